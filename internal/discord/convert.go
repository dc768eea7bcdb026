package discord

import (
	"sort"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/domain"
)

func toDomainRole(guildID string, r *discordgo.Role, members []string) *domain.Role {
	return &domain.Role{
		ID:          r.ID,
		GuildID:     guildID,
		Name:        r.Name,
		Position:    r.Position,
		Mentionable: r.Mentionable,
		Members:     members,
	}
}

func toDomainChannel(c *discordgo.Channel) *domain.Channel {
	ch := &domain.Channel{
		ID:         c.ID,
		GuildID:    c.GuildID,
		Name:       c.Name,
		Topic:      c.Topic,
		Overwrites: make([]domain.Overwrite, 0, len(c.PermissionOverwrites)),
	}
	for _, ow := range c.PermissionOverwrites {
		if ow == nil {
			continue
		}
		t := domain.OverwriteMember
		if ow.Type == discordgo.PermissionOverwriteTypeRole {
			t = domain.OverwriteRole
		}
		ch.Overwrites = append(ch.Overwrites, domain.Overwrite{ID: ow.ID, Type: t})
	}
	return ch
}

// toDomainMember: 멤버의 역할을 포지션 오름차순으로 정렬하고 기본 역할을 맨 앞에 둔다.
func toDomainMember(guildID string, m *discordgo.Member, guildRoles []*discordgo.Role) *domain.Member {
	out := &domain.Member{
		ID:          m.User.ID,
		GuildID:     guildID,
		Username:    m.User.Username,
		DisplayName: memberDisplayName(m),
		AvatarURL:   m.AvatarURL(constants.DiscordConfig.AvatarSize),
	}

	byID := make(map[string]*discordgo.Role, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r
	}

	roles := make([]domain.Role, 0, len(m.Roles)+1)
	if everyone, ok := byID[guildID]; ok {
		roles = append(roles, *toDomainRole(guildID, everyone, nil))
	} else {
		roles = append(roles, domain.Role{ID: guildID, GuildID: guildID, Name: "@everyone"})
	}

	assigned := make([]domain.Role, 0, len(m.Roles))
	for _, id := range m.Roles {
		if id == guildID {
			continue
		}
		if r, ok := byID[id]; ok {
			assigned = append(assigned, *toDomainRole(guildID, r, nil))
		}
	}
	sort.SliceStable(assigned, func(i, j int) bool {
		if assigned[i].Position != assigned[j].Position {
			return assigned[i].Position < assigned[j].Position
		}
		return assigned[i].ID < assigned[j].ID
	})
	out.Roles = append(roles, assigned...)
	return out
}

func memberDisplayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User == nil {
		return ""
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

func toIncomingMessage(m *discordgo.MessageCreate) *domain.IncomingMessage {
	msg := &domain.IncomingMessage{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		Content:   m.Content,
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
		msg.AuthorName = m.Author.Username
		if m.Author.GlobalName != "" {
			msg.AuthorName = m.Author.GlobalName
		}
		msg.AuthorAvatarURL = m.Author.AvatarURL(constants.DiscordConfig.AvatarSize)
		msg.AuthorBot = m.Author.Bot
	}
	if m.Member != nil {
		if m.Member.Nick != "" {
			msg.AuthorName = m.Member.Nick
		}
		msg.AuthorRoleIDs = append([]string(nil), m.Member.Roles...)
	}
	return msg
}

func toMessageEmbed(e *domain.Embed) *discordgo.MessageEmbed {
	if e == nil {
		return nil
	}
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
		Fields:      make([]*discordgo.MessageEmbedField, 0, len(e.Fields)),
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if e.ThumbnailURL != "" {
		out.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.ThumbnailURL}
	}
	if e.Footer != nil {
		out.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer.Text, IconURL: e.Footer.IconURL}
	}
	if !e.Timestamp.IsZero() {
		out.Timestamp = e.Timestamp.UTC().Format(time.RFC3339)
	}
	return out
}
