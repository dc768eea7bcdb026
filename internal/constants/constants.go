package constants

import "time"

// CacheTTL 는 패키지 변수다.
var CacheTTL = struct {
	ACLGroups time.Duration
}{
	ACLGroups: 5 * time.Minute, // 5분 - 길드별 ACL 그룹 목록
}

// ValkeyConfig 는 패키지 변수다.
var ValkeyConfig = struct {
	ReadyTimeout      time.Duration
	DialTimeout       time.Duration
	ConnWriteTimeout  time.Duration
	BlockingPoolSize  int
	PipelineMultiplex int
}{
	ReadyTimeout:      5 * time.Second,
	DialTimeout:       5 * time.Second,
	ConnWriteTimeout:  3 * time.Second,
	BlockingPoolSize:  20,
	PipelineMultiplex: 2,
}

// DiscordConfig 는 Discord 게이트웨이/임베드 관련 상수다.
var DiscordConfig = struct {
	AvatarSize        string
	DefaultEmbedColor int
	MaxEmbedFields    int
	MaxFieldValue     int
	ReadyTimeout      time.Duration
}{
	AvatarSize:        "256",
	DefaultEmbedColor: 0x3498db,
	MaxEmbedFields:    25,   // Discord Embed 필드 최대 개수
	MaxFieldValue:     1024, // Discord Embed 필드 값 최대 길이
	ReadyTimeout:      30 * time.Second,
}

// AppTimeout 는 앱 빌드/종료 타임아웃 설정이다.
var AppTimeout = struct {
	Build    time.Duration
	Shutdown time.Duration
}{
	Build:    30 * time.Second,
	Shutdown: 10 * time.Second,
}

// ServerTimeout 는 HTTP 서버 타임아웃이다.
var ServerTimeout = struct {
	ReadHeader time.Duration
	Idle       time.Duration
}{
	ReadHeader: 5 * time.Second,
	Idle:       60 * time.Second,
}

// CORSConfig 는 헬스 엔드포인트 CORS 설정이다. (관리 대시보드 폴링용)
var CORSConfig = struct {
	AllowMethods []string
	AllowHeaders []string
}{
	AllowMethods: []string{"GET", "OPTIONS"},
	AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
}

// ActivityTail 는 /health/activity 조회 개수 제한이다.
var ActivityTail = struct {
	DefaultLimit int
	MaxLimit     int
}{
	DefaultLimit: 50,
	MaxLimit:     500,
}

// BotWorkers 는 메시지 처리 워커 풀 설정이다.
var BotWorkers = struct {
	MaxConcurrent int
}{
	MaxConcurrent: 16,
}

// CommandRateLimit 는 사용자별 명령어 호출 제한이다.
var CommandRateLimit = struct {
	Interval    time.Duration // 토큰 하나가 채워지는 간격
	Burst       int
	IdleTimeout time.Duration // 이 시간 동안 호출이 없으면 리미터를 정리
}{
	Interval:    2 * time.Second,
	Burst:       3,
	IdleTimeout: 10 * time.Minute,
}

// RequestTimeout 는 명령어 처리 및 서비스 타임아웃 설정
var RequestTimeout = struct {
	BotCommand   time.Duration
	DatabasePing time.Duration
	SystemStats  time.Duration
	CachePing    time.Duration
}{
	BotCommand:   10 * time.Second,
	DatabasePing: 5 * time.Second,
	SystemStats:  2 * time.Second,
	CachePing:    2 * time.Second,
}

// DatabaseConfig 는 데이터베이스 연결 설정이다.
var DatabaseConfig = struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}{
	MaxOpenConns:    10,
	MaxIdleConns:    2,
	ConnMaxLifetime: 5 * time.Minute,
	ConnMaxIdleTime: 2 * time.Minute,
}

// DatabaseDefaults 는 PostgreSQL 기본값이다. (env 미설정 시)
var DatabaseDefaults = struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}{
	Host:     "localhost",
	Port:     5432,
	User:     "pumpkin",
	Password: "pumpkin",
	Database: "pumpkin",
}

// DateTimeLayout 는 임베드에 표시하는 날짜/시간 포맷이다.
const DateTimeLayout = "2006-01-02 15:04:05"
