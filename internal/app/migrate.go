package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/pool"
)

// Migrator: gorm 스키마 마이그레이션을 가진 저장소
type Migrator interface {
	AutoMigrate(ctx context.Context) error
}

// NamedMigrator 는 타입이다.
type NamedMigrator struct {
	Name     string
	Migrator Migrator
}

// Migrate: 저장소별 스키마 마이그레이션을 병렬로 실행한다. 서로 다른 테이블만 다루므로 순서 의존이 없다.
func Migrate(ctx context.Context, logger *slog.Logger, migrators ...NamedMigrator) error {
	p := pool.New().WithErrors().WithContext(ctx)
	for _, m := range migrators {
		if m.Migrator == nil {
			continue
		}
		p.Go(func(ctx context.Context) error {
			if err := m.Migrator.AutoMigrate(ctx); err != nil {
				return fmt.Errorf("migrate %s: %w", m.Name, err)
			}
			logger.Info("Schema migrated", slog.String("store", m.Name))
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}
