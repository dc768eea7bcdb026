package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq" // PostgreSQL 드라이버 등록
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Nessyi/pumpkin-management/internal/constants"
)

// PostgresService: PostgreSQL 데이터베이스 연결 및 GORM 인스턴스를 관리하는 서비스
type PostgresService struct {
	db     *sql.DB
	gormDB *gorm.DB
	logger *slog.Logger
}

// PostgresConfig: PostgreSQL 접속 정보를 담는 설정 구조체
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string // 비어있으면 disable
}

// DSN: lib/pq 형식의 접속 문자열을 만든다.
func (c PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, sslMode)
}

// NewPostgresService: 주어진 설정을 사용하여 PostgreSQL 연결을 수립하고 서비스를 초기화한다.
// 연결 풀 설정 및 초기 헬스 체크(Ping)를 수행하며, GORM 인스턴스도 함께 초기화한다.
func NewPostgresService(cfg PostgresConfig, logger *slog.Logger) (*PostgresService, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(constants.DatabaseConfig.MaxOpenConns)
	db.SetMaxIdleConns(constants.DatabaseConfig.MaxIdleConns)
	db.SetConnMaxLifetime(constants.DatabaseConfig.ConnMaxLifetime)
	db.SetConnMaxIdleTime(constants.DatabaseConfig.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout.DatabasePing)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL connected",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("database", cfg.Database),
	)

	// 기존 커넥션으로 GORM 초기화
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize GORM: %w", err)
	}

	return &PostgresService{
		db:     db,
		gormDB: gormDB,
		logger: logger,
	}, nil
}

// GetGormDB: GORM DB 인스턴스를 반환한다. (ORM 기반 DB 조작 시 활용)
func (ps *PostgresService) GetGormDB() *gorm.DB {
	return ps.gormDB
}

// Close: 데이터베이스 연결을 안전하게 종료한다.
func (ps *PostgresService) Close() error {
	if ps.db != nil {
		if err := ps.db.Close(); err != nil {
			return fmt.Errorf("failed to close postgres: %w", err)
		}
	}
	return nil
}

// NewPostgresServiceFromGorm: 이미 열린 GORM 인스턴스로 서비스를 구성한다. (sqlite 기반 테스트용)
func NewPostgresServiceFromGorm(gormDB *gorm.DB, logger *slog.Logger) (*PostgresService, error) {
	db, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresService{db: db, gormDB: gormDB, logger: logger}, nil
}

// Ping: 데이터베이스 연결 상태를 확인한다. (헬스 체크용)
func (ps *PostgresService) Ping(ctx context.Context) error {
	if err := ps.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	return nil
}
