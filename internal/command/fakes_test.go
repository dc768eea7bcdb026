package command

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/i18n"
)

type fakePlatform struct {
	roles    map[string]*domain.Role
	channels map[string]*domain.Channel
	members  map[string]*domain.Member // query 또는 user id → member
	webhooks map[string][]domain.Webhook
	hidden   map[string]bool // channel id
}

func (f *fakePlatform) ResolveRole(_ context.Context, _, query string) (*domain.Role, error) {
	return f.roles[query], nil
}

func (f *fakePlatform) ResolveTextChannel(_ context.Context, _, query string) (*domain.Channel, error) {
	return f.channels[query], nil
}

func (f *fakePlatform) ResolveMember(_ context.Context, _, query string) (*domain.Member, error) {
	return f.members[query], nil
}

func (f *fakePlatform) Member(_ context.Context, _, userID string) (*domain.Member, error) {
	return f.members[userID], nil
}

func (f *fakePlatform) ChannelWebhooks(_ context.Context, channelID string) ([]domain.Webhook, error) {
	return f.webhooks[channelID], nil
}

func (f *fakePlatform) CanViewChannel(_ context.Context, _, channelID string) (bool, error) {
	return !f.hidden[channelID], nil
}

func (f *fakePlatform) Reply(context.Context, *domain.CommandContext, domain.Reply) error {
	return nil
}

type fakeGroups map[string]*domain.ACLGroup // role id → group

func (f fakeGroups) GetGroupByRole(_ context.Context, _, roleID string) (*domain.ACLGroup, error) {
	return f[roleID], nil
}

type fakeVerify struct {
	byUser    map[string]*domain.VerifyMember
	byAddress map[string]*domain.VerifyMember
}

func (f *fakeVerify) GetByMember(_ context.Context, _, userID string) (*domain.VerifyMember, error) {
	return f.byUser[userID], nil
}

func (f *fakeVerify) GetByAddress(_ context.Context, _, address string) (*domain.VerifyMember, error) {
	return f.byAddress[address], nil
}

type fakeActivity struct {
	messages []string
}

func (f *fakeActivity) GuildInfo(_ *domain.CommandContext, message string) {
	f.messages = append(f.messages, message)
}

type testEnv struct {
	deps     *Dependencies
	platform *fakePlatform
	verify   *fakeVerify
	groups   fakeGroups
	activity *fakeActivity
	replies  []domain.Reply
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	translator, err := i18n.NewTranslator("en")
	if err != nil {
		t.Fatalf("failed to create translator: %v", err)
	}

	env := &testEnv{
		platform: &fakePlatform{
			roles:    map[string]*domain.Role{},
			channels: map[string]*domain.Channel{},
			members:  map[string]*domain.Member{},
			webhooks: map[string][]domain.Webhook{},
			hidden:   map[string]bool{},
		},
		verify: &fakeVerify{
			byUser:    map[string]*domain.VerifyMember{},
			byAddress: map[string]*domain.VerifyMember{},
		},
		groups:   fakeGroups{},
		activity: &fakeActivity{},
	}
	env.deps = &Dependencies{
		Platform:   env.platform,
		ACL:        env.groups,
		Verify:     env.verify,
		Activity:   env.activity,
		Translator: translator,
		Embeds:     adapter.NewEmbedBuilder(0).WithClock(func() time.Time { return fixedNow }),
		Location:   time.UTC,
		SendReply: func(_ context.Context, _ *domain.CommandContext, reply domain.Reply) error {
			env.replies = append(env.replies, reply)
			return nil
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return env
}

func (e *testEnv) lastReply(t *testing.T) domain.Reply {
	t.Helper()
	if len(e.replies) == 0 {
		t.Fatalf("expected a reply, got none")
	}
	return e.replies[len(e.replies)-1]
}

func (e *testEnv) lastEmbed(t *testing.T) *domain.Embed {
	t.Helper()
	reply := e.lastReply(t)
	if reply.Embed == nil {
		t.Fatalf("expected embed reply, got text %q", reply.Content)
	}
	return reply.Embed
}

func testCommandContext(locale string) *domain.CommandContext {
	return &domain.CommandContext{
		GuildID:    "1",
		ChannelID:  "10",
		MessageID:  "20",
		AuthorID:   "500",
		AuthorName: "caller",
		Locale:     locale,
	}
}

func query(q string) map[string]any {
	return map[string]any{queryParam: q}
}

func assertField(t *testing.T, embed *domain.Embed, name, value string) {
	t.Helper()
	field, ok := embed.Field(name)
	if !ok {
		t.Fatalf("expected field %q, fields=%+v", name, embed.Fields)
	}
	if field.Value != value {
		t.Fatalf("field %q = %q, expected %q", name, field.Value, value)
	}
}

func assertNoField(t *testing.T, embed *domain.Embed, name string) {
	t.Helper()
	if _, ok := embed.Field(name); ok {
		t.Fatalf("expected no field %q, fields=%+v", name, embed.Fields)
	}
}
