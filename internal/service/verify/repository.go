package verify

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/service/database"
	"github.com/Nessyi/pumpkin-management/internal/util"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

// Member: 인증 멤버 GORM 모델
type Member struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	GuildID   int64     `gorm:"not null;uniqueIndex:idx_verify_members_guild_user;index:idx_verify_members_guild_address"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_verify_members_guild_user"`
	Address   string    `gorm:"size:255;not null;index:idx_verify_members_guild_address"`
	Code      string    `gorm:"size:32;not null"`
	Status    int       `gorm:"not null;default:0"`
	Timestamp time.Time `gorm:"not null"`
}

// TableName 는 동작을 수행한다.
func (Member) TableName() string {
	return "verify_members"
}

// Repository: 인증 DB 조회용 리포지토리
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewRepository 는 동작을 수행한다.
func NewRepository(postgres *database.PostgresService, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: postgres.GetGormDB(), logger: logger}
}

// AutoMigrate: 인증 테이블 스키마를 마이그레이션한다.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&Member{}); err != nil {
		return fmt.Errorf("verify auto migrate failed: %w", err)
	}
	return nil
}

// GetByMember: (길드, 사용자)로 인증 레코드를 조회한다. 없으면 (nil, nil).
func (r *Repository) GetByMember(ctx context.Context, guildID, userID string) (*domain.VerifyMember, error) {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	uid, err := util.ParseSnowflake(userID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "user_id", userID)
	}

	var row Member
	err = r.db.WithContext(ctx).Where("guild_id = ? AND user_id = ?", gid, uid).First(&row).Error
	return r.result(row, err, "get_by_member")
}

// GetByAddress: (길드, 주소)로 인증 레코드를 조회한다. 없으면 (nil, nil).
func (r *Repository) GetByAddress(ctx context.Context, guildID, address string) (*domain.VerifyMember, error) {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	address = util.TrimSpace(address)
	if address == "" {
		return nil, errors.NewValidationError("address must not be empty", "address", address)
	}

	var row Member
	err = r.db.WithContext(ctx).Where("guild_id = ? AND address = ?", gid, address).Order("id").First(&row).Error
	return r.result(row, err, "get_by_address")
}

// Add: 인증 레코드를 추가한다. (도구 및 테스트용)
func (r *Repository) Add(ctx context.Context, m domain.VerifyMember) (*domain.VerifyMember, error) {
	gid, err := util.ParseSnowflake(m.GuildID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "guild_id", m.GuildID)
	}
	uid, err := util.ParseSnowflake(m.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "user_id", m.UserID)
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}

	row := Member{
		GuildID:   gid,
		UserID:    uid,
		Address:   util.TrimSpace(m.Address),
		Code:      m.Code,
		Status:    int(m.Status),
		Timestamp: m.Timestamp.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, errors.NewServiceError("failed to create verify member", "verify", "add", err)
	}

	r.logger.Debug("Verify member added",
		slog.String("guild_id", m.GuildID),
		slog.String("user_id", m.UserID),
	)
	out := toDomain(row)
	return &out, nil
}

func (r *Repository) result(row Member, err error, operation string) (*domain.VerifyMember, error) {
	if stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewServiceError("failed to query verify members", "verify", operation, err)
	}
	out := toDomain(row)
	return &out, nil
}

func toDomain(row Member) domain.VerifyMember {
	return domain.VerifyMember{
		ID:        row.ID,
		GuildID:   util.FormatSnowflake(row.GuildID),
		UserID:    util.FormatSnowflake(row.UserID),
		Address:   row.Address,
		Code:      row.Code,
		Status:    domain.VerifyStatus(row.Status),
		Timestamp: row.Timestamp,
	}
}
