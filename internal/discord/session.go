package discord

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/util"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

// REST 멤버 목록 조회 한 페이지 크기 (API 최대값)
const memberPageSize = 1000

// 이름 검색 시 REST로 받아오는 최대 후보 수
const memberSearchLimit = 10

// Session: discordgo 세션 기반 Platform 구현
// 게이트웨이 상태 캐시를 먼저 보고, 없으면 REST로 조회한다.
type Session struct {
	dg     *discordgo.Session
	logger *slog.Logger
	ready  atomic.Bool
}

var _ Platform = (*Session)(nil)

// NewSession: 봇 토큰으로 세션을 만든다. 게이트웨이 연결은 Open에서 수행한다.
func NewSession(token string, logger *slog.Logger) (*Session, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent
	dg.StateEnabled = true
	dg.State.TrackMembers = true
	dg.State.TrackRoles = true
	dg.State.TrackChannels = true

	return NewSessionFromDiscordgo(dg, logger), nil
}

// NewSessionFromDiscordgo: 이미 구성된 discordgo 세션을 감싼다. (테스트에서 상태만 채워 사용)
func NewSessionFromDiscordgo(dg *discordgo.Session, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{dg: dg, logger: logger}
	dg.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		s.ready.Store(true)
		s.logger.Info("Discord gateway ready",
			slog.String("user", r.User.Username),
			slog.Int("guilds", len(r.Guilds)),
		)
	})
	dg.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
		s.ready.Store(true)
		s.logger.Info("Discord gateway resumed")
	})
	dg.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		s.ready.Store(false)
		s.logger.Warn("Discord gateway disconnected")
	})
	return s
}

// OnMessage: 메시지 수신 핸들러를 등록한다. ctx는 핸들러 호출마다 전달되는 부모 문맥이다.
func (s *Session) OnMessage(ctx context.Context, handler MessageHandler) {
	s.dg.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m == nil || m.Message == nil {
			return
		}
		handler(ctx, toIncomingMessage(m))
	})
}

// Open: 게이트웨이에 연결한다.
func (s *Session) Open() error {
	if err := s.dg.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	return nil
}

// Close: 게이트웨이 연결을 종료한다.
func (s *Session) Close() error {
	s.ready.Store(false)
	if err := s.dg.Close(); err != nil {
		return fmt.Errorf("failed to close discord gateway: %w", err)
	}
	return nil
}

// Ready: 게이트웨이 READY 이벤트를 받은 상태인지 여부 (헬스 체크용)
func (s *Session) Ready() bool {
	return s.ready.Load()
}

// ResolveRole: 역할 멘션, ID, 이름(대소문자 무시) 순서로 역할을 찾는다.
func (s *Session) ResolveRole(ctx context.Context, guildID, query string) (*domain.Role, error) {
	roles, err := s.guildRoles(ctx, guildID)
	if err != nil {
		return nil, err
	}

	var found *discordgo.Role
	if id, ok := ParseRoleMention(query); ok {
		found = findRole(roles, func(r *discordgo.Role) bool { return r.ID == id })
	}
	if found == nil {
		name := stripRoleName(query)
		found = findRole(roles, func(r *discordgo.Role) bool { return r.Name == name })
		if found == nil {
			found = findRole(roles, func(r *discordgo.Role) bool { return strings.EqualFold(r.Name, name) })
		}
	}
	if found == nil {
		return nil, nil
	}

	members, err := s.roleMembers(ctx, guildID, found.ID)
	if err != nil {
		return nil, err
	}
	return toDomainRole(guildID, found, members), nil
}

// ResolveTextChannel: 채널 멘션, ID, 이름 순서로 길드 텍스트 채널을 찾는다.
func (s *Session) ResolveTextChannel(ctx context.Context, guildID, query string) (*domain.Channel, error) {
	channels, err := s.guildChannels(ctx, guildID)
	if err != nil {
		return nil, err
	}

	var found *discordgo.Channel
	if id, ok := ParseChannelMention(query); ok {
		found = findChannel(channels, func(c *discordgo.Channel) bool { return c.ID == id })
	}
	if found == nil {
		name := stripChannelName(query)
		found = findChannel(channels, func(c *discordgo.Channel) bool { return c.Name == name })
		if found == nil {
			found = findChannel(channels, func(c *discordgo.Channel) bool { return strings.EqualFold(c.Name, name) })
		}
	}
	if found == nil || !isTextChannel(found) {
		return nil, nil
	}
	return toDomainChannel(found), nil
}

// ResolveMember: 멘션/ID, 사용자 이름, 전역 이름, 닉네임 순서로 멤버를 찾는다.
func (s *Session) ResolveMember(ctx context.Context, guildID, query string) (*domain.Member, error) {
	if id, ok := ParseUserMention(query); ok {
		return s.Member(ctx, guildID, id)
	}

	name := util.TrimSpace(strings.TrimPrefix(util.TrimSpace(query), "@"))
	if name == "" {
		return nil, nil
	}

	cached := s.stateMembers(guildID)
	if m := matchMember(cached, name); m != nil {
		return s.convertMember(ctx, guildID, m)
	}
	if s.stateComplete(guildID, cached) {
		return nil, nil
	}

	// 상태 캐시는 이벤트로 본 멤버만 담으므로 나머지는 REST 검색으로 찾는다.
	searched, err := s.dg.GuildMembersSearch(guildID, name, memberSearchLimit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.NewServiceError("failed to search guild members", "discord", "resolve_member", err)
	}
	if m := matchMember(searched, name); m != nil {
		return s.convertMember(ctx, guildID, m)
	}
	return nil, nil
}

// matchMember: 사용자 이름, 전역 이름, 닉네임, 표시 이름(대소문자 무시) 순서로 일치하는 멤버를 찾는다.
func matchMember(candidates []*discordgo.Member, name string) *discordgo.Member {
	matchers := []func(*discordgo.Member) bool{
		func(m *discordgo.Member) bool { return m.User.Username == name },
		func(m *discordgo.Member) bool { return m.User.GlobalName != "" && m.User.GlobalName == name },
		func(m *discordgo.Member) bool { return m.Nick != "" && m.Nick == name },
		func(m *discordgo.Member) bool { return strings.EqualFold(memberDisplayName(m), name) },
	}
	for _, match := range matchers {
		for _, m := range candidates {
			if m == nil || m.User == nil {
				continue
			}
			if match(m) {
				return m
			}
		}
	}
	return nil
}

// Member: ID로 길드 멤버를 조회한다. 길드에 없으면 (nil, nil).
func (s *Session) Member(ctx context.Context, guildID, userID string) (*domain.Member, error) {
	if m, err := s.dg.State.Member(guildID, userID); err == nil && m != nil && m.User != nil {
		return s.convertMember(ctx, guildID, m)
	}

	m, err := s.dg.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, errors.NewServiceError("failed to fetch guild member", "discord", "member", err)
	}
	if m.GuildID == "" {
		m.GuildID = guildID
	}
	return s.convertMember(ctx, guildID, m)
}

// ChannelWebhooks: 채널에 등록된 웹훅 목록 (봇에 MANAGE_WEBHOOKS 권한 필요)
func (s *Session) ChannelWebhooks(ctx context.Context, channelID string) ([]domain.Webhook, error) {
	hooks, err := s.dg.ChannelWebhooks(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.NewServiceError("failed to fetch channel webhooks", "discord", "webhooks", err)
	}
	out := make([]domain.Webhook, 0, len(hooks))
	for _, h := range hooks {
		out = append(out, domain.Webhook{ID: h.ID, Name: h.Name})
	}
	return out, nil
}

// CanViewChannel: 사용자가 채널 보기 권한을 가지고 있는지 확인한다.
func (s *Session) CanViewChannel(ctx context.Context, userID, channelID string) (bool, error) {
	perms, err := s.dg.UserChannelPermissions(userID, channelID, discordgo.WithContext(ctx))
	if err != nil {
		return false, errors.NewServiceError("failed to compute channel permissions", "discord", "permissions", err)
	}
	return perms&discordgo.PermissionViewChannel == discordgo.PermissionViewChannel, nil
}

// Reply: 명령어 메시지에 답장한다. 응답으로 인한 멘션 알림은 보내지 않는다.
func (s *Session) Reply(ctx context.Context, cmdCtx *domain.CommandContext, reply domain.Reply) error {
	send := &discordgo.MessageSend{
		Content:         reply.Content,
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
	if embed := toMessageEmbed(reply.Embed); embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{embed}
	}
	if cmdCtx.MessageID != "" {
		send.Reference = &discordgo.MessageReference{
			MessageID: cmdCtx.MessageID,
			ChannelID: cmdCtx.ChannelID,
			GuildID:   cmdCtx.GuildID,
		}
	}

	if _, err := s.dg.ChannelMessageSendComplex(cmdCtx.ChannelID, send, discordgo.WithContext(ctx)); err != nil {
		return errors.NewServiceError("failed to send reply", "discord", "reply", err)
	}
	return nil
}

func (s *Session) convertMember(ctx context.Context, guildID string, m *discordgo.Member) (*domain.Member, error) {
	roles, err := s.guildRoles(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return toDomainMember(guildID, m, roles), nil
}

func (s *Session) guildRoles(ctx context.Context, guildID string) ([]*discordgo.Role, error) {
	if g, err := s.dg.State.Guild(guildID); err == nil && g != nil && len(g.Roles) > 0 {
		s.dg.State.RLock()
		roles := append([]*discordgo.Role(nil), g.Roles...)
		s.dg.State.RUnlock()
		return roles, nil
	}

	roles, err := s.dg.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.NewServiceError("failed to fetch guild roles", "discord", "roles", err)
	}
	return roles, nil
}

func (s *Session) guildChannels(ctx context.Context, guildID string) ([]*discordgo.Channel, error) {
	if g, err := s.dg.State.Guild(guildID); err == nil && g != nil && len(g.Channels) > 0 {
		s.dg.State.RLock()
		channels := append([]*discordgo.Channel(nil), g.Channels...)
		s.dg.State.RUnlock()
		return channels, nil
	}

	channels, err := s.dg.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.NewServiceError("failed to fetch guild channels", "discord", "channels", err)
	}
	return channels, nil
}

func (s *Session) stateMembers(guildID string) []*discordgo.Member {
	g, err := s.dg.State.Guild(guildID)
	if err != nil || g == nil {
		return nil
	}
	s.dg.State.RLock()
	defer s.dg.State.RUnlock()
	return append([]*discordgo.Member(nil), g.Members...)
}

// stateComplete: 상태 캐시가 길드의 모든 멤버를 담고 있는지 여부
func (s *Session) stateComplete(guildID string, members []*discordgo.Member) bool {
	g, err := s.dg.State.Guild(guildID)
	if err != nil || g == nil || len(members) == 0 {
		return false
	}
	return len(members) >= g.MemberCount
}

// roleMembers: 역할을 가진 멤버 ID 목록. 상태 캐시가 길드 전체 멤버를 담고 있지 않으면 REST로 전부 조회한다.
func (s *Session) roleMembers(ctx context.Context, guildID, roleID string) ([]string, error) {
	members := s.stateMembers(guildID)
	if !s.stateComplete(guildID, members) {
		fetched, err := s.allMembers(ctx, guildID)
		if err != nil {
			return nil, err
		}
		members = fetched
	}

	ids := make([]string, 0)
	for _, m := range members {
		if m == nil || m.User == nil {
			continue
		}
		if roleID == guildID || util.Contains(m.Roles, roleID) {
			ids = append(ids, m.User.ID)
		}
	}
	return ids, nil
}

func (s *Session) allMembers(ctx context.Context, guildID string) ([]*discordgo.Member, error) {
	var (
		out   []*discordgo.Member
		after string
	)
	for {
		page, err := s.dg.GuildMembers(guildID, after, memberPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, errors.NewServiceError("failed to list guild members", "discord", "members", err)
		}
		out = append(out, page...)
		if len(page) < memberPageSize {
			return out, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func findRole(roles []*discordgo.Role, match func(*discordgo.Role) bool) *discordgo.Role {
	for _, r := range roles {
		if r != nil && match(r) {
			return r
		}
	}
	return nil
}

func findChannel(channels []*discordgo.Channel, match func(*discordgo.Channel) bool) *discordgo.Channel {
	for _, c := range channels {
		if c != nil && match(c) {
			return c
		}
	}
	return nil
}

func isTextChannel(c *discordgo.Channel) bool {
	return c.Type == discordgo.ChannelTypeGuildText || c.Type == discordgo.ChannelTypeGuildNews
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if stdErrors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
