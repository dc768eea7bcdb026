package acl

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/service/cache"
	"github.com/Nessyi/pumpkin-management/internal/service/database"
	"github.com/Nessyi/pumpkin-management/internal/util"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

// Valkey 캐시 키 접두사
const aclGroupsKeyPrefix = "acl:groups:"

// Service: 길드별 명령어 접근 제어(ACL)를 관리하는 서비스
// PostgreSQL을 영구 저장소로 사용하고, 그룹 목록은 Valkey에 캐싱한다.
type Service struct {
	db       *gorm.DB
	cache    *cache.Service
	logger   *slog.Logger
	ownerIDs []string
}

// NewACLService: ACL 서비스를 생성한다. cacheSvc가 nil이면 캐싱 없이 DB만 사용한다.
func NewACLService(postgres *database.PostgresService, cacheSvc *cache.Service, logger *slog.Logger, ownerIDs []string) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		db:       postgres.GetGormDB(),
		cache:    cacheSvc,
		logger:   logger,
		ownerIDs: ownerIDs,
	}
}

// AutoMigrate: ACL 테이블 스키마를 마이그레이션한다.
func (s *Service) AutoMigrate(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := s.db.WithContext(ctx).AutoMigrate(
		&Group{},
		&Rule{},
		&RuleGroup{},
		&UserOverwrite{},
	); err != nil {
		return fmt.Errorf("acl auto migrate failed: %w", err)
	}
	return nil
}

func groupsKey(guildID string) string {
	return aclGroupsKeyPrefix + guildID
}

// Groups: 길드의 전체 그룹 목록을 반환한다. (캐시 우선)
func (s *Service) Groups(ctx context.Context, guildID string) ([]domain.ACLGroup, error) {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "guild_id", guildID)
	}

	if s.cache != nil {
		var cached []domain.ACLGroup
		found, cacheErr := s.cache.Get(ctx, groupsKey(guildID), &cached)
		if cacheErr != nil {
			s.logger.Warn("ACL group cache read failed", slog.String("guild_id", guildID), slog.Any("error", cacheErr))
		} else if found {
			return cached, nil
		}
	}

	var rows []Group
	if err := s.db.WithContext(ctx).Where("guild_id = ?", gid).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.NewServiceError("failed to load acl groups", "acl", "groups", err)
	}

	groups := make([]domain.ACLGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, toDomainGroup(row))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, groupsKey(guildID), groups, constants.CacheTTL.ACLGroups); err != nil {
			s.logger.Warn("ACL group cache write failed", slog.String("guild_id", guildID), slog.Any("error", err))
		}
	}

	return groups, nil
}

// GetGroupByRole: 역할에 연결된 그룹을 반환한다. 없으면 (nil, nil).
func (s *Service) GetGroupByRole(ctx context.Context, guildID, roleID string) (*domain.ACLGroup, error) {
	groups, err := s.Groups(ctx, guildID)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].RoleID != "" && groups[i].RoleID == roleID {
			return &groups[i], nil
		}
	}
	return nil, nil
}

// Check: 명령어 실행 권한을 판정한다.
// 판정 순서: 봇 소유자 → 규칙 없음(거부) → 사용자 덮어쓰기 → 높은 역할부터 그룹 및 상위 그룹 → 규칙 기본값
func (s *Service) Check(ctx context.Context, guildID, command string, subject domain.ACLSubject) (bool, error) {
	if util.Contains(s.ownerIDs, subject.UserID) {
		return true, nil
	}

	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return false, errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	command = util.Normalize(command)

	var rule Rule
	err = s.db.WithContext(ctx).Where("guild_id = ? AND command = ?", gid, command).First(&rule).Error
	if stdErrors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Debug("ACL rule missing, denying",
			slog.String("guild_id", guildID),
			slog.String("command", command),
		)
		return false, nil
	}
	if err != nil {
		return false, errors.NewServiceError("failed to load acl rule", "acl", "check", err)
	}

	if uid, parseErr := util.ParseSnowflake(subject.UserID); parseErr == nil {
		var ow UserOverwrite
		err = s.db.WithContext(ctx).
			Where("guild_id = ? AND command = ? AND user_id = ?", gid, command, uid).
			First(&ow).Error
		if err == nil {
			return ow.Allow, nil
		}
		if !stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return false, errors.NewServiceError("failed to load acl user overwrite", "acl", "check", err)
		}
	}

	var ruleGroups []RuleGroup
	if err := s.db.WithContext(ctx).Where("rule_id = ?", rule.ID).Find(&ruleGroups).Error; err != nil {
		return false, errors.NewServiceError("failed to load acl rule groups", "acl", "check", err)
	}
	if len(ruleGroups) == 0 {
		return rule.DefaultAllow, nil
	}

	decisions := make(map[int64]bool, len(ruleGroups))
	for _, rg := range ruleGroups {
		decisions[rg.GroupID] = rg.Allow
	}

	groups, err := s.Groups(ctx, guildID)
	if err != nil {
		return false, err
	}
	byRole := make(map[string]domain.ACLGroup, len(groups))
	byName := make(map[string]domain.ACLGroup, len(groups))
	for _, g := range groups {
		if g.RoleID != "" {
			byRole[g.RoleID] = g
		}
		byName[g.Name] = g
	}

	for i := len(subject.RoleIDs) - 1; i >= 0; i-- {
		group, ok := byRole[subject.RoleIDs[i]]
		if !ok {
			continue
		}
		visited := make(map[string]struct{})
		for {
			if _, seen := visited[group.Name]; seen {
				break
			}
			visited[group.Name] = struct{}{}

			if allow, ok := decisions[group.ID]; ok {
				return allow, nil
			}
			parent, ok := byName[group.Parent]
			if group.Parent == "" || !ok {
				break
			}
			group = parent
		}
	}

	return rule.DefaultAllow, nil
}

// AddGroup: 새 그룹을 추가한다. parent는 같은 길드의 기존 그룹 이름이어야 한다.
func (s *Service) AddGroup(ctx context.Context, guildID, name, parent, roleID string) (*domain.ACLGroup, error) {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	name = util.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("group name must not be empty", "name", name)
	}

	row := Group{GuildID: gid, Name: name, Parent: util.TrimSpace(parent)}
	if roleID != "" {
		rid, err := util.ParseSnowflake(roleID)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), "role_id", roleID)
		}
		row.RoleID = rid
	}

	if row.Parent != "" {
		var count int64
		if err := s.db.WithContext(ctx).Model(&Group{}).
			Where("guild_id = ? AND name = ?", gid, row.Parent).
			Count(&count).Error; err != nil {
			return nil, errors.NewServiceError("failed to look up parent group", "acl", "add_group", err)
		}
		if count == 0 {
			return nil, errors.NewValidationError("parent group does not exist", "parent", row.Parent)
		}
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, errors.NewServiceError("failed to create acl group", "acl", "add_group", err)
	}
	s.invalidate(ctx, guildID)

	s.logger.Info("ACL group added",
		slog.String("guild_id", guildID),
		slog.String("group", name),
		slog.String("role_id", roleID),
	)

	group := toDomainGroup(row)
	return &group, nil
}

// AddRule: 명령어 규칙을 추가하거나 기본값을 갱신한다.
func (s *Service) AddRule(ctx context.Context, guildID, command string, defaultAllow bool) error {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	command = util.Normalize(command)
	if command == "" {
		return errors.NewValidationError("command must not be empty", "command", command)
	}

	rule := Rule{GuildID: gid, Command: command, DefaultAllow: defaultAllow}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}, {Name: "command"}},
		DoUpdates: clause.AssignmentColumns([]string{"default_allow"}),
	}).Create(&rule).Error
	if err != nil {
		return errors.NewServiceError("failed to save acl rule", "acl", "add_rule", err)
	}

	s.logger.Info("ACL rule saved",
		slog.String("guild_id", guildID),
		slog.String("command", command),
		slog.Bool("default", defaultAllow),
	)
	return nil
}

// SetRuleGroup: 규칙에 그룹별 허용 여부를 설정한다.
func (s *Service) SetRuleGroup(ctx context.Context, guildID, command, groupName string, allow bool) error {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	command = util.Normalize(command)

	var rule Rule
	if err := s.db.WithContext(ctx).Where("guild_id = ? AND command = ?", gid, command).First(&rule).Error; err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewNotFoundError("rule", command)
		}
		return errors.NewServiceError("failed to load acl rule", "acl", "set_rule_group", err)
	}

	var group Group
	if err := s.db.WithContext(ctx).Where("guild_id = ? AND name = ?", gid, groupName).First(&group).Error; err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewNotFoundError("group", groupName)
		}
		return errors.NewServiceError("failed to load acl group", "acl", "set_rule_group", err)
	}

	rg := RuleGroup{RuleID: rule.ID, GroupID: group.ID, Allow: allow}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "rule_id"}, {Name: "group_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"allow"}),
	}).Create(&rg).Error
	if err != nil {
		return errors.NewServiceError("failed to save acl rule group", "acl", "set_rule_group", err)
	}
	return nil
}

// SetUserOverwrite: 사용자별 명령어 허용 여부를 설정한다.
func (s *Service) SetUserOverwrite(ctx context.Context, guildID, command, userID string, allow bool) error {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	uid, err := util.ParseSnowflake(userID)
	if err != nil {
		return errors.NewValidationError(err.Error(), "user_id", userID)
	}

	ow := UserOverwrite{GuildID: gid, Command: util.Normalize(command), UserID: uid, Allow: allow}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}, {Name: "command"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"allow"}),
	}).Create(&ow).Error
	if err != nil {
		return errors.NewServiceError("failed to save acl user overwrite", "acl", "set_user_overwrite", err)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, guildID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, groupsKey(guildID)); err != nil {
		s.logger.Warn("ACL group cache invalidation failed", slog.String("guild_id", guildID), slog.Any("error", err))
	}
}

func toDomainGroup(row Group) domain.ACLGroup {
	return domain.ACLGroup{
		ID:      row.ID,
		GuildID: util.FormatSnowflake(row.GuildID),
		Name:    row.Name,
		Parent:  row.Parent,
		RoleID:  util.FormatSnowflake(row.RoleID),
	}
}
