package adapter

import (
	"strings"
	"testing"
	"time"

	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/domain"
)

func TestEmbedBuilder_New(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewEmbedBuilder(0x112233).WithClock(func() time.Time { return fixed })

	cmdCtx := &domain.CommandContext{AuthorName: "mod", AuthorAvatarURL: "https://cdn/avatar.png"}
	embed := b.New(cmdCtx, "Whois", "desc")

	if embed.Title != "Whois" || embed.Description != "desc" {
		t.Fatalf("unexpected embed: %+v", embed)
	}
	if embed.Color != 0x112233 {
		t.Fatalf("unexpected color: %x", embed.Color)
	}
	if embed.Footer == nil || embed.Footer.Text != "mod" || embed.Footer.IconURL != "https://cdn/avatar.png" {
		t.Fatalf("unexpected footer: %+v", embed.Footer)
	}
	if !embed.Timestamp.Equal(fixed) {
		t.Fatalf("unexpected timestamp: %v", embed.Timestamp)
	}
}

func TestEmbedBuilder_DefaultColor(t *testing.T) {
	embed := NewEmbedBuilder(0).New(nil, "t", "")
	if embed.Color != constants.DiscordConfig.DefaultEmbedColor {
		t.Fatalf("expected default color, got %x", embed.Color)
	}
	if embed.Footer != nil {
		t.Fatalf("expected no footer without context")
	}
}

func TestAddField_Limits(t *testing.T) {
	embed := &domain.Embed{}

	long := strings.Repeat("a", constants.DiscordConfig.MaxFieldValue+10)
	if !AddField(embed, "long", long, true) {
		t.Fatalf("expected field to be added")
	}
	if got := len([]rune(embed.Fields[0].Value)); got != constants.DiscordConfig.MaxFieldValue {
		t.Fatalf("expected truncated value, got %d runes", got)
	}

	AddField(embed, "empty", "", false)
	if embed.Fields[1].Value != "-" {
		t.Fatalf("expected placeholder for empty value, got %q", embed.Fields[1].Value)
	}

	for len(embed.Fields) < constants.DiscordConfig.MaxEmbedFields {
		AddField(embed, "f", "v", true)
	}
	if AddField(embed, "overflow", "v", true) {
		t.Fatalf("expected field limit to be enforced")
	}
}
