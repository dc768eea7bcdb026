package i18n

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Nessyi/pumpkin-management/internal/service/database"
	"github.com/Nessyi/pumpkin-management/internal/util"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

// GuildLanguage: 길드 기본 언어 설정
type GuildLanguage struct {
	GuildID  int64  `gorm:"primaryKey;autoIncrement:false"`
	Language string `gorm:"size:16;not null"`
}

// TableName 는 동작을 수행한다.
func (GuildLanguage) TableName() string {
	return "i18n_guild_languages"
}

// MemberLanguage: 길드 내 멤버 개인 언어 설정
type MemberLanguage struct {
	GuildID  int64  `gorm:"primaryKey;autoIncrement:false"`
	UserID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Language string `gorm:"size:16;not null"`
}

// TableName 는 동작을 수행한다.
func (MemberLanguage) TableName() string {
	return "i18n_member_languages"
}

// LocaleResolver: 멤버 설정 → 길드 설정 → 기본값 순서로 응답 언어를 결정한다.
type LocaleResolver struct {
	db            *gorm.DB
	translator    *Translator
	defaultLocale string
	logger        *slog.Logger
}

// NewLocaleResolver 는 동작을 수행한다.
func NewLocaleResolver(postgres *database.PostgresService, translator *Translator, defaultLocale string, logger *slog.Logger) *LocaleResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocaleResolver{
		db:            postgres.GetGormDB(),
		translator:    translator,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// AutoMigrate: 언어 설정 테이블 스키마를 마이그레이션한다.
func (r *LocaleResolver) AutoMigrate(ctx context.Context) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&GuildLanguage{}, &MemberLanguage{}); err != nil {
		return fmt.Errorf("i18n auto migrate failed: %w", err)
	}
	return nil
}

// Resolve: 응답 언어 코드를 반환한다. DB 조회 실패 시 기본 언어로 진행한다.
func (r *LocaleResolver) Resolve(ctx context.Context, guildID, userID string) string {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return r.normalize(r.defaultLocale)
	}

	if uid, err := util.ParseSnowflake(userID); err == nil {
		var ml MemberLanguage
		err := r.db.WithContext(ctx).Where("guild_id = ? AND user_id = ?", gid, uid).First(&ml).Error
		switch {
		case err == nil:
			return r.normalize(ml.Language)
		case !stdErrors.Is(err, gorm.ErrRecordNotFound):
			r.logger.Warn("Failed to load member language", slog.String("user_id", userID), slog.Any("error", err))
		}
	}

	var gl GuildLanguage
	err = r.db.WithContext(ctx).Where("guild_id = ?", gid).First(&gl).Error
	switch {
	case err == nil:
		return r.normalize(gl.Language)
	case !stdErrors.Is(err, gorm.ErrRecordNotFound):
		r.logger.Warn("Failed to load guild language", slog.String("guild_id", guildID), slog.Any("error", err))
	}

	return r.normalize(r.defaultLocale)
}

// SetGuildLanguage: 길드 기본 언어를 저장한다.
func (r *LocaleResolver) SetGuildLanguage(ctx context.Context, guildID, locale string) error {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	row := GuildLanguage{GuildID: gid, Language: r.normalize(locale)}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return errors.NewServiceError("failed to save guild language", "i18n", "set_guild_language", err)
	}
	return nil
}

// SetMemberLanguage: 멤버 개인 언어를 저장한다.
func (r *LocaleResolver) SetMemberLanguage(ctx context.Context, guildID, userID, locale string) error {
	gid, err := util.ParseSnowflake(guildID)
	if err != nil {
		return errors.NewValidationError(err.Error(), "guild_id", guildID)
	}
	uid, err := util.ParseSnowflake(userID)
	if err != nil {
		return errors.NewValidationError(err.Error(), "user_id", userID)
	}
	row := MemberLanguage{GuildID: gid, UserID: uid, Language: r.normalize(locale)}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return errors.NewServiceError("failed to save member language", "i18n", "set_member_language", err)
	}
	return nil
}

func (r *LocaleResolver) normalize(locale string) string {
	if r.translator == nil {
		return util.Normalize(locale)
	}
	return r.translator.Match(locale).String()
}
