package domain

import (
	"reflect"
	"testing"
)

func TestMember_RoleNamesHighestFirst(t *testing.T) {
	m := &Member{
		ID:      "10",
		GuildID: "1",
		Roles: []Role{
			{ID: "1", GuildID: "1", Name: "@everyone", Position: 0},
			{ID: "20", GuildID: "1", Name: "verified", Position: 1},
			{ID: "30", GuildID: "1", Name: "moderator", Position: 5},
		},
	}

	got := m.RoleNamesHighestFirst()
	want := []string{"moderator", "verified"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RoleNamesHighestFirst() = %v, want %v", got, want)
	}
}

func TestMember_RoleNamesHighestFirst_OnlyDefault(t *testing.T) {
	m := &Member{
		ID:      "10",
		GuildID: "1",
		Roles:   []Role{{ID: "1", GuildID: "1", Name: "@everyone"}},
	}
	if got := m.RoleNamesHighestFirst(); len(got) != 0 {
		t.Fatalf("expected no roles, got %v", got)
	}
}

func TestMember_Name(t *testing.T) {
	tests := []struct {
		name   string
		member *Member
		want   string
	}{
		{"nil member", nil, ""},
		{"display name", &Member{Username: "user", DisplayName: "Nick"}, "Nick"},
		{"username fallback", &Member{Username: "user"}, "user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.member.Name(); got != tt.want {
				t.Errorf("Member.Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChannel_CountOverwrites(t *testing.T) {
	ch := &Channel{
		Overwrites: []Overwrite{
			{ID: "1", Type: OverwriteRole},
			{ID: "2", Type: OverwriteMember},
			{ID: "3", Type: OverwriteRole},
			{ID: "4", Type: OverwriteRole},
		},
	}

	roles, members := ch.CountOverwrites()
	if roles != 3 || members != 1 {
		t.Fatalf("CountOverwrites() = (%d, %d), want (3, 1)", roles, members)
	}
	if roles+members != len(ch.Overwrites) {
		t.Fatalf("counts must sum to overwrite total")
	}
}

func TestEmbed_AddField(t *testing.T) {
	e := &Embed{}
	e.AddField("a", "1")
	e.AddField("b", "2", false)

	if !e.Fields[0].Inline {
		t.Fatalf("expected inline default")
	}
	if e.Fields[1].Inline {
		t.Fatalf("expected explicit non-inline")
	}
	if f, ok := e.Field("b"); !ok || f.Value != "2" {
		t.Fatalf("Field(b) = %+v, %v", f, ok)
	}
	if _, ok := e.Field("c"); ok {
		t.Fatalf("unexpected field c")
	}
}
