package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("BOT_PREFIX", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("HEALTH_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Bot.Prefix != "!" {
		t.Fatalf("expected default prefix '!', got %q", cfg.Bot.Prefix)
	}
	if cfg.Locale.Default != "en" {
		t.Fatalf("expected default locale en, got %q", cfg.Locale.Default)
	}
	if cfg.Locale.Timezone != "Europe/Prague" {
		t.Fatalf("expected default timezone, got %q", cfg.Locale.Timezone)
	}
	if cfg.Server.Port != 30010 {
		t.Fatalf("expected default health port, got %d", cfg.Server.Port)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error when token is missing")
	}
	if !strings.Contains(err.Error(), "DISCORD_TOKEN") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidTimezone(t *testing.T) {
	cfg := &Config{
		Discord:  DiscordConfig{Token: "token"},
		Bot:      BotConfig{Prefix: "!"},
		Locale:   LocaleConfig{Timezone: "Mars/Olympus"},
		Server:   ServerConfig{Port: 1},
		Postgres: PostgresConfig{Port: 5432},
		Valkey:   ValkeyConfig{Port: 6379},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected invalid timezone error")
	}
}

func TestBotConfig_IsOwner(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("BOT_OWNER_IDS", " 100 , 200,, ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(cfg.Bot.OwnerIDs, []string{"100", "200"}) {
		t.Fatalf("unexpected owner ids: %v", cfg.Bot.OwnerIDs)
	}
	if !cfg.Bot.IsOwner("200") {
		t.Fatalf("expected 200 to be owner")
	}
	if cfg.Bot.IsOwner("300") {
		t.Fatalf("expected 300 not to be owner")
	}
}

func TestGetEnvColor(t *testing.T) {
	cases := map[string]int{
		"#ff0000":  0xff0000,
		"0x00FF00": 0x00ff00,
		"255":      255,
		"nope":     42,
		"#1000000": 42,
	}

	for raw, expected := range cases {
		t.Setenv("TEST_COLOR", raw)
		if got := getEnvColor("TEST_COLOR", 42); got != expected {
			t.Fatalf("getEnvColor(%q) = %d, expected %d", raw, got, expected)
		}
	}
}
