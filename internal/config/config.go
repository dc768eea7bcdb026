package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/util"
)

// Config: 관리 봇의 전체 동작에 필요한 설정을 담는 구조체
type Config struct {
	Discord  DiscordConfig
	Bot      BotConfig
	Locale   LocaleConfig
	Valkey   ValkeyConfig
	Postgres PostgresConfig
	Logging  LoggingConfig
	Activity ActivityConfig
	Server   ServerConfig
	Version  string
}

// DiscordConfig: Discord 게이트웨이 접속 설정
type DiscordConfig struct {
	Token string
}

// BotConfig: 봇의 기본 동작(명령어 접두사, 소유자, 임베드 색상) 설정
type BotConfig struct {
	Prefix     string
	OwnerIDs   []string
	EmbedColor int
}

// IsOwner: 봇 소유자 여부를 확인한다. 소유자는 ACL 검사를 우회한다.
func (c BotConfig) IsOwner(userID string) bool {
	return util.Contains(c.OwnerIDs, util.TrimSpace(userID))
}

// LocaleConfig: 번역 기본 언어 및 날짜 표시용 타임존 설정
type LocaleConfig struct {
	Default  string
	Timezone string
}

// Location: 설정된 타임존의 Location을 반환한다.
func (c LocaleConfig) Location() *time.Location {
	return util.LoadLocation(c.Timezone)
}

// ValkeyConfig: 데이터 캐싱 용도의 Valkey 연결 설정
type ValkeyConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PostgresConfig: 메인 데이터베이스(PostgreSQL) 연결 설정
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// LoggingConfig: 애플리케이션 로그 설정 (레벨, 디렉토리, 로테이션 정책)
type LoggingConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ActivityConfig: 길드 활동 로그 파일 설정
type ActivityConfig struct {
	FilePath string
}

// ServerConfig: 헬스 체크 HTTP 서버 설정
type ServerConfig struct {
	Port        int
	CORSOrigins []string // 비어있으면 CORS 미들웨어를 붙이지 않는다.
}

// Load: .env 파일 및 환경 변수로부터 설정을 로드하고, 기본값을 적용하여 Config 객체를 생성한다.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Discord: DiscordConfig{
			Token: util.TrimSpace(getEnv("DISCORD_TOKEN", "")),
		},
		Bot: BotConfig{
			Prefix:     util.TrimSpace(getEnv("BOT_PREFIX", "!")),
			OwnerIDs:   parseCommaSeparated(getEnv("BOT_OWNER_IDS", "")),
			EmbedColor: getEnvColor("BOT_EMBED_COLOR", constants.DiscordConfig.DefaultEmbedColor),
		},
		Locale: LocaleConfig{
			Default:  util.Normalize(getEnv("DEFAULT_LOCALE", "en")),
			Timezone: util.TrimSpace(getEnv("TIMEZONE", "Europe/Prague")),
		},
		Valkey: ValkeyConfig{
			Host:     getEnv("CACHE_HOST", "localhost"),
			Port:     getEnvInt("CACHE_PORT", 6379),
			Password: getEnv("CACHE_PASSWORD", ""),
			DB:       getEnvInt("CACHE_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", constants.DatabaseDefaults.Host),
			Port:     getEnvInt("POSTGRES_PORT", constants.DatabaseDefaults.Port),
			User:     getEnv("POSTGRES_USER", constants.DatabaseDefaults.User),
			Password: getEnv("POSTGRES_PASSWORD", constants.DatabaseDefaults.Password),
			Database: getEnv("POSTGRES_DB", constants.DatabaseDefaults.Database),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Dir:        getEnv("LOG_DIR", "logs"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Activity: ActivityConfig{
			FilePath: getEnv("ACTIVITY_LOG_FILE", "logs/activity.log"),
		},
		Server: ServerConfig{
			Port:        getEnvInt("HEALTH_PORT", 30010),
			CORSOrigins: parseCommaSeparated(getEnv("HEALTH_CORS_ORIGINS", "")),
		},
		Version: util.TrimSpace(getEnv("APP_VERSION", "1.0.0-go")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate: 필수 설정값이 누락되지 않았는지 검증한다.
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Bot.Prefix == "" {
		return fmt.Errorf("BOT_PREFIX must not be empty")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("HEALTH_PORT must be positive")
	}
	if c.Postgres.Port <= 0 {
		return fmt.Errorf("POSTGRES_PORT must be positive")
	}
	if c.Valkey.Port <= 0 {
		return fmt.Errorf("CACHE_PORT must be positive")
	}
	if c.Locale.Timezone != "" {
		if _, err := time.LoadLocation(c.Locale.Timezone); err != nil {
			return fmt.Errorf("TIMEZONE is invalid: %w", err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvColor: "#3498db", "0x3498db", "3447003" 형식을 모두 허용한다.
func getEnvColor(key string, defaultValue int) int {
	value := util.Normalize(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	base := 10
	switch {
	case strings.HasPrefix(value, "#"):
		value, base = value[1:], 16
	case strings.HasPrefix(value, "0x"):
		value, base = value[2:], 16
	}

	color, err := strconv.ParseInt(value, base, 32)
	if err != nil || color < 0 || color > 0xFFFFFF {
		return defaultValue
	}
	return int(color)
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := util.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
