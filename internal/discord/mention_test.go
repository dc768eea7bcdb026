package discord

import "testing"

func TestParseMentions(t *testing.T) {
	tests := []struct {
		name   string
		parse  func(string) (string, bool)
		input  string
		wantID string
		wantOK bool
	}{
		{"role mention", ParseRoleMention, "<@&200>", "200", true},
		{"role raw id", ParseRoleMention, " 200 ", "200", true},
		{"role name", ParseRoleMention, "moderator", "", false},
		{"role user mention", ParseRoleMention, "<@200>", "", false},
		{"channel mention", ParseChannelMention, "<#400>", "400", true},
		{"channel broken", ParseChannelMention, "<#abc>", "", false},
		{"user mention", ParseUserMention, "<@300>", "300", true},
		{"user nick mention", ParseUserMention, "<@!300>", "300", true},
		{"user rejects role mention", ParseUserMention, "<@&300>", "", false},
		{"user raw id", ParseUserMention, "300", "300", true},
		{"user name", ParseUserMention, "someone", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.parse(tt.input)
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("parse(%q) = (%q, %v), want (%q, %v)", tt.input, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
