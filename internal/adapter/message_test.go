package adapter

import (
	"testing"

	"github.com/Nessyi/pumpkin-management/internal/domain"
)

func TestParseMessage(t *testing.T) {
	adapter := NewMessageAdapter("!")

	tests := []struct {
		name      string
		content   string
		wantType  domain.CommandType
		wantQuery string
	}{
		{"roleinfo with mention", "!roleinfo <@&123>", domain.CommandRoleInfo, "<@&123>"},
		{"alias and case", "!ROLE Moderators", domain.CommandRoleInfo, "Moderators"},
		{"name with spaces", "!roleinfo  Staff  Team ", domain.CommandRoleInfo, "Staff  Team"},
		{"channelinfo", "!channelinfo #general", domain.CommandChannelInfo, "#general"},
		{"whois id", "!whois 300000000000000001", domain.CommandWhois, "300000000000000001"},
		{"rwhois address", "!rwhois xlogin00@stud.fit.vutbr.cz", domain.CommandReverseWhois, "xlogin00@stud.fit.vutbr.cz"},
		{"help", "!help", domain.CommandHelp, ""},
		{"no prefix", "whois 1", domain.CommandUnknown, ""},
		{"unknown command", "!ban 1", domain.CommandUnknown, ""},
		{"prefix only", "!", domain.CommandUnknown, ""},
		{"empty", "", domain.CommandUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := adapter.ParseMessage(tt.content)
			if result == nil {
				t.Fatalf("expected parsed command, got nil")
			}
			if result.Type != tt.wantType {
				t.Fatalf("expected %s, got %s", tt.wantType, result.Type)
			}
			query, _ := result.Params["query"].(string)
			if query != tt.wantQuery {
				t.Fatalf("expected query %q, got %q", tt.wantQuery, query)
			}
		})
	}
}

func TestParseMessage_CustomPrefix(t *testing.T) {
	adapter := NewMessageAdapter("pk.")

	result := adapter.ParseMessage("pk.whois someone")
	if result.Type != domain.CommandWhois {
		t.Fatalf("expected CommandWhois, got %s", result.Type)
	}
	if result := adapter.ParseMessage("!whois someone"); result.Type != domain.CommandUnknown {
		t.Fatalf("expected unknown for foreign prefix, got %s", result.Type)
	}
}

func TestNewMessageAdapter_EmptyPrefix(t *testing.T) {
	if got := NewMessageAdapter(" ").Prefix(); got != "!" {
		t.Fatalf("expected default prefix, got %q", got)
	}
}
