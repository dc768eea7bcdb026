package command

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

func TestRoleInfoCommand_WithGroup(t *testing.T) {
	env := newTestEnv(t)
	env.platform.roles["@mods"] = &domain.Role{
		ID: "300", GuildID: "1", Name: "mods", Mentionable: true,
		Members: []string{"a", "b", "c"},
	}
	env.groups["300"] = &domain.ACLGroup{Name: "moderators", RoleID: "300"}

	cmd := NewRoleInfoCommand(env.deps)
	if err := cmd.Execute(context.Background(), testCommandContext("en"), query("@mods")); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	embed := env.lastEmbed(t)
	if embed.Title != "mods" || embed.Description != "300" {
		t.Fatalf("unexpected title/description: %q / %q", embed.Title, embed.Description)
	}
	assertField(t, embed, "Member count", "3")
	assertField(t, embed, "Taggable", "Yes")
	assertField(t, embed, "ACL group", "moderators")
	if embed.Footer == nil || embed.Footer.Text != "caller" {
		t.Fatalf("expected caller footer, got %+v", embed.Footer)
	}
	if !embed.Timestamp.Equal(fixedNow) {
		t.Fatalf("unexpected timestamp: %v", embed.Timestamp)
	}
}

func TestRoleInfoCommand_NoGroupTranslated(t *testing.T) {
	env := newTestEnv(t)
	env.platform.roles["guests"] = &domain.Role{ID: "301", GuildID: "1", Name: "guests"}

	cmd := NewRoleInfoCommand(env.deps)
	if err := cmd.Execute(context.Background(), testCommandContext("cs"), query("guests")); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	embed := env.lastEmbed(t)
	assertField(t, embed, "Počet členů", "0")
	assertField(t, embed, "Označitelná", "Ne")
	assertNoField(t, embed, "ACL skupina")
	if len(embed.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(embed.Fields))
	}
}

func TestRoleInfoCommand_NotFound(t *testing.T) {
	env := newTestEnv(t)

	cmd := NewRoleInfoCommand(env.deps)
	err := cmd.Execute(context.Background(), testCommandContext("en"), query("nope"))

	var notFound *errors.NotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Kind != "role" || notFound.Query != "nope" {
		t.Fatalf("unexpected not found error: %+v", notFound)
	}
	if len(env.replies) != 0 {
		t.Fatalf("expected no reply, got %d", len(env.replies))
	}
}

func TestRoleInfoCommand_MissingArgument(t *testing.T) {
	env := newTestEnv(t)

	cmd := NewRoleInfoCommand(env.deps)
	err := cmd.Execute(context.Background(), testCommandContext("en"), map[string]any{})

	var validation *errors.ValidationError
	if !stderrors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validation.Field != "role" {
		t.Fatalf("unexpected field: %q", validation.Field)
	}
}
