package activity

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nessyi/pumpkin-management/internal/domain"
)

func newTestLogger(t *testing.T, name string) *Logger {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "nested", name)
	return NewActivityLogger(filePath, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestActivityLogger_LogAndGetRecentLogs(t *testing.T) {
	l := newTestLogger(t, "activity.log")
	l.Log(TypeSystem, LevelInfo, "first", map[string]any{"key": "value"})
	l.Log(TypeSystem, LevelInfo, "second", nil)

	logs, err := l.GetRecentLogs(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].Summary != "first" || logs[1].Summary != "second" {
		t.Fatalf("unexpected log order: %+v", logs)
	}

	limited, err := l.GetRecentLogs(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 1 || limited[0].Summary != "second" {
		t.Fatalf("unexpected limited logs: %+v", limited)
	}
}

func TestActivityLogger_GuildInfo(t *testing.T) {
	l := newTestLogger(t, "guild.log")
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	cmdCtx := domain.NewCommandContext("1", "2", "3", "4", "mod", "!whois 5")
	l.GuildInfo(cmdCtx, "Whois lookup for 5.")

	logs, err := l.GetRecentLogs(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	entry := logs[0]
	if entry.Type != TypeGuild || entry.Level != LevelInfo {
		t.Fatalf("unexpected entry kind: %+v", entry)
	}
	if entry.Summary != "Whois lookup for 5." {
		t.Fatalf("unexpected summary: %q", entry.Summary)
	}
	if entry.Details["guild_id"] != "1" || entry.Details["author_name"] != "mod" {
		t.Fatalf("unexpected details: %+v", entry.Details)
	}
	if !entry.Timestamp.Equal(fixed) {
		t.Fatalf("unexpected timestamp: %v", entry.Timestamp)
	}
}

func TestActivityLogger_GetRecentLogsMissingFile(t *testing.T) {
	l := newTestLogger(t, "missing.log")
	logs, err := l.GetRecentLogs(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected empty logs, got %d", len(logs))
	}
}
