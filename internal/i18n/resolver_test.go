package i18n

import (
	"context"
	"testing"

	"github.com/Nessyi/pumpkin-management/internal/testhelper"
)

const (
	testGuild = "100000000000000001"
	testUser  = "300000000000000001"
)

func newTestResolver(t *testing.T) *LocaleResolver {
	t.Helper()

	tr, err := NewTranslator("en")
	if err != nil {
		t.Fatalf("failed to create translator: %v", err)
	}
	r := NewLocaleResolver(testhelper.NewSQLitePostgres(t), tr, "en", testhelper.DiscardLogger())
	if err := r.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return r
}

func TestLocaleResolver_Resolve(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	if got := r.Resolve(ctx, testGuild, testUser); got != "en" {
		t.Fatalf("expected default locale, got %q", got)
	}

	if err := r.SetGuildLanguage(ctx, testGuild, "sk"); err != nil {
		t.Fatalf("set guild language failed: %v", err)
	}
	if got := r.Resolve(ctx, testGuild, testUser); got != "sk" {
		t.Fatalf("expected guild locale, got %q", got)
	}

	if err := r.SetMemberLanguage(ctx, testGuild, testUser, "cs"); err != nil {
		t.Fatalf("set member language failed: %v", err)
	}
	if got := r.Resolve(ctx, testGuild, testUser); got != "cs" {
		t.Fatalf("expected member locale, got %q", got)
	}

	// 갱신
	if err := r.SetGuildLanguage(ctx, testGuild, "en"); err != nil {
		t.Fatalf("update guild language failed: %v", err)
	}
	if got := r.Resolve(ctx, testGuild, "300000000000000002"); got != "en" {
		t.Fatalf("expected updated guild locale, got %q", got)
	}
}

func TestLocaleResolver_InvalidGuild(t *testing.T) {
	r := newTestResolver(t)
	if got := r.Resolve(context.Background(), "", testUser); got != "en" {
		t.Fatalf("expected default locale for DM, got %q", got)
	}
}
