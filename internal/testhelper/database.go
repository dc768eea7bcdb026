package testhelper

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Nessyi/pumpkin-management/internal/service/database"
)

// NewSQLitePostgres: 인메모리 SQLite를 PostgresService로 감싸서 반환한다.
// 커넥션을 하나로 고정해야 같은 인메모리 DB를 공유한다.
func NewSQLitePostgres(t *testing.T) *database.PostgresService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	svc, err := database.NewPostgresServiceFromGorm(db, DiscardLogger())
	if err != nil {
		t.Fatalf("failed to wrap sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = svc.Close()
	})
	return svc
}
