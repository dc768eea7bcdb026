package acl

import (
	"context"
	"testing"

	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/testhelper"
)

const (
	testGuild = "100000000000000001"
	roleMod   = "200000000000000001"
	roleStaff = "200000000000000002"
	roleFan   = "200000000000000003"
	userA     = "300000000000000001"
	userOwner = "300000000000000099"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	pg := testhelper.NewSQLitePostgres(t)
	cacheSvc, _ := testhelper.NewMiniredisCache(t)
	svc := NewACLService(pg, cacheSvc, testhelper.DiscardLogger(), []string{userOwner})
	if err := svc.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return svc
}

func TestGetGroupByRole(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddGroup(ctx, testGuild, "mod", "", roleMod); err != nil {
		t.Fatalf("add group failed: %v", err)
	}

	group, err := svc.GetGroupByRole(ctx, testGuild, roleMod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group == nil || group.Name != "mod" {
		t.Fatalf("unexpected group: %+v", group)
	}

	group, err = svc.GetGroupByRole(ctx, testGuild, roleFan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group != nil {
		t.Fatalf("expected no group, got %+v", group)
	}
}

func TestGroupsCacheInvalidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// 빈 목록도 캐시된다
	if groups, err := svc.Groups(ctx, testGuild); err != nil || len(groups) != 0 {
		t.Fatalf("unexpected groups: %v, %v", groups, err)
	}

	if _, err := svc.AddGroup(ctx, testGuild, "staff", "", roleStaff); err != nil {
		t.Fatalf("add group failed: %v", err)
	}

	group, err := svc.GetGroupByRole(ctx, testGuild, roleStaff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group == nil {
		t.Fatalf("expected cache to be invalidated after AddGroup")
	}
}

func TestAddGroup_UnknownParent(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddGroup(context.Background(), testGuild, "child", "missing", ""); err == nil {
		t.Fatalf("expected error for unknown parent")
	}
}

func TestCheck(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddGroup(ctx, testGuild, "staff", "", roleStaff); err != nil {
		t.Fatalf("add staff failed: %v", err)
	}
	if _, err := svc.AddGroup(ctx, testGuild, "mod", "staff", roleMod); err != nil {
		t.Fatalf("add mod failed: %v", err)
	}
	if _, err := svc.AddGroup(ctx, testGuild, "fan", "", roleFan); err != nil {
		t.Fatalf("add fan failed: %v", err)
	}
	if err := svc.AddRule(ctx, testGuild, "whois", false); err != nil {
		t.Fatalf("add rule failed: %v", err)
	}
	if err := svc.SetRuleGroup(ctx, testGuild, "whois", "staff", true); err != nil {
		t.Fatalf("set rule group failed: %v", err)
	}
	if err := svc.SetRuleGroup(ctx, testGuild, "whois", "fan", false); err != nil {
		t.Fatalf("set rule group failed: %v", err)
	}

	tests := []struct {
		name    string
		command string
		subject domain.ACLSubject
		want    bool
	}{
		{"owner bypasses missing rule", "roleinfo", domain.ACLSubject{UserID: userOwner}, true},
		{"missing rule denies", "roleinfo", domain.ACLSubject{UserID: userA, RoleIDs: []string{roleStaff}}, false},
		{"parent group allows", "whois", domain.ACLSubject{UserID: userA, RoleIDs: []string{roleMod}}, true},
		{"highest role decides", "whois", domain.ACLSubject{UserID: userA, RoleIDs: []string{roleStaff, roleFan}}, false},
		{"highest role decides reversed", "whois", domain.ACLSubject{UserID: userA, RoleIDs: []string{roleFan, roleStaff}}, true},
		{"no group falls back to default", "whois", domain.ACLSubject{UserID: userA}, false},
		{"command name is normalized", " WHOIS ", domain.ACLSubject{UserID: userA, RoleIDs: []string{roleMod}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Check(ctx, testGuild, tt.command, tt.subject)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheck_UserOverwrite(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.AddRule(ctx, testGuild, "rwhois", true); err != nil {
		t.Fatalf("add rule failed: %v", err)
	}

	allowed, err := svc.Check(ctx, testGuild, "rwhois", domain.ACLSubject{UserID: userA})
	if err != nil || !allowed {
		t.Fatalf("expected default allow, got %v (%v)", allowed, err)
	}

	if err := svc.SetUserOverwrite(ctx, testGuild, "rwhois", userA, false); err != nil {
		t.Fatalf("set overwrite failed: %v", err)
	}
	allowed, err = svc.Check(ctx, testGuild, "rwhois", domain.ACLSubject{UserID: userA})
	if err != nil || allowed {
		t.Fatalf("expected overwrite deny, got %v (%v)", allowed, err)
	}

	// 덮어쓰기 값 갱신
	if err := svc.SetUserOverwrite(ctx, testGuild, "rwhois", userA, true); err != nil {
		t.Fatalf("update overwrite failed: %v", err)
	}
	allowed, err = svc.Check(ctx, testGuild, "rwhois", domain.ACLSubject{UserID: userA})
	if err != nil || !allowed {
		t.Fatalf("expected overwrite allow, got %v (%v)", allowed, err)
	}
}

func TestAddRule_UpdatesDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.AddRule(ctx, testGuild, "help", false); err != nil {
		t.Fatalf("add rule failed: %v", err)
	}
	if err := svc.AddRule(ctx, testGuild, "help", true); err != nil {
		t.Fatalf("update rule failed: %v", err)
	}

	allowed, err := svc.Check(ctx, testGuild, "help", domain.ACLSubject{UserID: userA})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatalf("expected updated default to allow")
	}
}

func TestSetRuleGroup_Missing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SetRuleGroup(ctx, testGuild, "whois", "staff", true); err == nil {
		t.Fatalf("expected missing rule error")
	}
	if err := svc.AddRule(ctx, testGuild, "whois", false); err != nil {
		t.Fatalf("add rule failed: %v", err)
	}
	if err := svc.SetRuleGroup(ctx, testGuild, "whois", "staff", true); err == nil {
		t.Fatalf("expected missing group error")
	}
}
