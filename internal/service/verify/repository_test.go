package verify

import (
	"context"
	"testing"
	"time"

	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/testhelper"
)

const (
	testGuild = "100000000000000001"
	testUser  = "300000000000000001"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	repo := NewRepository(testhelper.NewSQLitePostgres(t), testhelper.DiscardLogger())
	if err := repo.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return repo
}

func TestRepository_GetByMember(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if _, err := repo.Add(ctx, domain.VerifyMember{
		GuildID:   testGuild,
		UserID:    testUser,
		Address:   "xuser00@stud.fit.vutbr.cz",
		Code:      "ABC123",
		Status:    domain.VerifyStatusVerified,
		Timestamp: ts,
	}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := repo.GetByMember(ctx, testGuild, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected record")
	}
	if got.UserID != testUser || got.GuildID != testGuild {
		t.Fatalf("unexpected ids: %+v", got)
	}
	if got.Status != domain.VerifyStatusVerified || got.Code != "ABC123" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.Timestamp.Equal(ts) {
		t.Fatalf("unexpected timestamp: %v", got.Timestamp)
	}

	missing, err := repo.GetByMember(ctx, testGuild, "300000000000000002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing member, got %+v", missing)
	}
}

func TestRepository_GetByAddress(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.Add(ctx, domain.VerifyMember{
		GuildID: testGuild,
		UserID:  testUser,
		Address: "someone@example.com",
		Code:    "XYZ",
		Status:  domain.VerifyStatusPending,
	}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := repo.GetByAddress(ctx, testGuild, " someone@example.com ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.UserID != testUser {
		t.Fatalf("unexpected record: %+v", got)
	}

	// 다른 길드의 레코드는 보이지 않는다
	other, err := repo.GetByAddress(ctx, "100000000000000002", "someone@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other != nil {
		t.Fatalf("expected guild scoped lookup, got %+v", other)
	}
}

func TestRepository_InvalidInput(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.GetByMember(ctx, testGuild, "not-a-number"); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := repo.GetByAddress(ctx, testGuild, "  "); err == nil {
		t.Fatalf("expected validation error for empty address")
	}
}
