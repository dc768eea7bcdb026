package activity

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/Nessyi/pumpkin-management/internal/domain"
)

// 로그 종류
const (
	TypeGuild  = "guild"
	TypeSystem = "system"
)

// 로그 레벨
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
)

// LogEntry: 활동 로그의 한 항목을 나타내는 구조체
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Type      string         `json:"type"` // guild, system
	Level     string         `json:"level"`
	Summary   string         `json:"summary"`
	Details   map[string]any `json:"details,omitempty"`
}

// Logger: 파일 기반의 길드 활동 로그 기록기
type Logger struct {
	filePath string
	logger   *slog.Logger
	now      func() time.Time
	mu       sync.RWMutex
}

// NewActivityLogger: 새로운 활동 로그 기록기를 생성한다.
func NewActivityLogger(filePath string, logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{
		filePath: filePath,
		logger:   logger,
		now:      time.Now,
	}
}

// GuildInfo: 길드 범위의 info 레벨 활동을 기록한다. (조회 명령어 감사 로그)
func (l *Logger) GuildInfo(cmdCtx *domain.CommandContext, message string) {
	l.guild(LevelInfo, cmdCtx, message)
}

// GuildWarning: 길드 범위의 warning 레벨 활동을 기록한다.
func (l *Logger) GuildWarning(cmdCtx *domain.CommandContext, message string) {
	l.guild(LevelWarning, cmdCtx, message)
}

func (l *Logger) guild(level string, cmdCtx *domain.CommandContext, message string) {
	details := map[string]any{}
	if cmdCtx != nil {
		details["guild_id"] = cmdCtx.GuildID
		details["channel_id"] = cmdCtx.ChannelID
		details["author_id"] = cmdCtx.AuthorID
		details["author_name"] = cmdCtx.AuthorName
	}

	l.logger.Info("Guild activity",
		slog.String("level", level),
		slog.String("summary", message),
		slog.Any("details", details),
	)
	l.Log(TypeGuild, level, message, details)
}

// Log: 새로운 활동 로그를 파일에 추가한다. (Thread-safe)
func (l *Logger) Log(entryType, level, summary string, details map[string]any) {
	entry := LogEntry{
		Timestamp: l.now(),
		Type:      entryType,
		Level:     level,
		Summary:   summary,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.filePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			l.logger.Error("Failed to create activity log directory", slog.Any("error", err))
			return
		}
	}

	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.logger.Error("Failed to open activity log file", slog.Any("error", err))
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		l.logger.Error("Failed to write activity log", slog.Any("error", err))
	}
}

// GetRecentLogs: 최근 활동 로그를 조회한다.
func (l *Logger) GetRecentLogs(limit int) ([]LogEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	f, err := os.Open(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []LogEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open activity log: %w", err)
	}
	defer f.Close()

	var logs []LogEntry
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var entry LogEntry
		if err := decoder.Decode(&entry); err != nil {
			break
		}
		logs = append(logs, entry)
	}

	if limit > 0 && len(logs) > limit {
		return logs[len(logs)-limit:], nil
	}
	return logs, nil
}
