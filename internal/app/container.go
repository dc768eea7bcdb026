package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/bot"
	"github.com/Nessyi/pumpkin-management/internal/config"
	"github.com/Nessyi/pumpkin-management/internal/discord"
	"github.com/Nessyi/pumpkin-management/internal/i18n"
	"github.com/Nessyi/pumpkin-management/internal/platform/bootstrap"
	"github.com/Nessyi/pumpkin-management/internal/service/acl"
	"github.com/Nessyi/pumpkin-management/internal/service/activity"
	"github.com/Nessyi/pumpkin-management/internal/service/cache"
	"github.com/Nessyi/pumpkin-management/internal/service/database"
	"github.com/Nessyi/pumpkin-management/internal/service/verify"
)

// Stores: 데이터 저장소 묶음 (봇 런타임과 마이그레이션 도구가 공유)
type Stores struct {
	Cache      *cache.Service
	Postgres   *database.PostgresService
	Translator *i18n.Translator
	ACL        *acl.Service
	Verify     *verify.Repository
	Locales    *i18n.LocaleResolver

	cleanup []func()
}

// Migrators: 스키마를 가진 저장소 목록
func (s *Stores) Migrators() []NamedMigrator {
	return []NamedMigrator{
		{Name: "acl", Migrator: s.ACL},
		{Name: "verify", Migrator: s.Verify},
		{Name: "i18n", Migrator: s.Locales},
	}
}

// Close - 저장소 연결 해제 (생성 역순)
func (s *Stores) Close() {
	if s == nil {
		return
	}
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
	s.cleanup = nil
}

// BuildStores: 캐시, DB, 번역기와 그 위의 저장소를 구성한다.
func BuildStores(cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	stores := &Stores{}

	cacheRes, err := bootstrap.NewCacheResources(cfg.Valkey, logger)
	if err != nil {
		return nil, err
	}
	stores.Cache = cacheRes.Service
	stores.cleanup = append(stores.cleanup, cacheRes.Close)

	dbRes, err := bootstrap.NewDatabaseResources(cfg.Postgres, logger)
	if err != nil {
		stores.Close()
		return nil, err
	}
	stores.Postgres = dbRes.Service
	stores.cleanup = append(stores.cleanup, dbRes.Close)

	translator, err := i18n.NewTranslator(cfg.Locale.Default)
	if err != nil {
		stores.Close()
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	stores.Translator = translator

	stores.ACL = acl.NewACLService(stores.Postgres, stores.Cache, logger, cfg.Bot.OwnerIDs)
	stores.Verify = verify.NewRepository(stores.Postgres, logger)
	stores.Locales = i18n.NewLocaleResolver(stores.Postgres, translator, cfg.Locale.Default, logger)

	return stores, nil
}

// BotRuntime: 봇 프로세스 구성요소 (게이트웨이 세션, 봇, 헬스 서버)
type BotRuntime struct {
	Config   *config.Config
	Logger   *slog.Logger
	Stores   *Stores
	Session  *discord.Session
	Activity *activity.Logger
	Bot      *bot.Bot
}

// Close - 런타임 리소스 정리 (DB, 캐시 연결 해제)
func (r *BotRuntime) Close() {
	if r != nil {
		r.Stores.Close()
	}
}

// BuildRuntime: 설정으로 런타임을 구성하고 스키마 마이그레이션을 수행한다.
func BuildRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BotRuntime, error) {
	stores, err := BuildStores(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build stores: %w", err)
	}

	if err := Migrate(ctx, logger, stores.Migrators()...); err != nil {
		stores.Close()
		return nil, err
	}

	session, err := discord.NewSession(cfg.Discord.Token, logger)
	if err != nil {
		stores.Close()
		return nil, err
	}

	activityLogger := activity.NewActivityLogger(cfg.Activity.FilePath, logger)

	b, err := bot.NewBot(&bot.Dependencies{
		Config:         cfg,
		Logger:         logger,
		Platform:       session,
		MessageAdapter: adapter.NewMessageAdapter(cfg.Bot.Prefix),
		Embeds:         adapter.NewEmbedBuilder(cfg.Bot.EmbedColor),
		Translator:     stores.Translator,
		Locales:        stores.Locales,
		ACL:            stores.ACL,
		Verify:         stores.Verify,
		Activity:       activityLogger,
	})
	if err != nil {
		stores.Close()
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotRuntime{
		Config:   cfg,
		Logger:   logger,
		Stores:   stores,
		Session:  session,
		Activity: activityLogger,
		Bot:      b,
	}, nil
}
