package command

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

// ChannelInfoCommand: 채널의 권한 덮어쓰기 구성과 웹훅 수를 보여준다.
// 호출자가 볼 수 없는 채널이면 거부 메시지로 답한다.
type ChannelInfoCommand struct {
	BaseCommand
}

// NewChannelInfoCommand 는 동작을 수행한다.
func NewChannelInfoCommand(deps *Dependencies) *ChannelInfoCommand {
	return &ChannelInfoCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name 는 동작을 수행한다.
func (c *ChannelInfoCommand) Name() string {
	return string(domain.CommandChannelInfo)
}

// Description 는 동작을 수행한다.
func (c *ChannelInfoCommand) Description() string {
	return adapter.DescChannelInfo
}

// Execute 는 동작을 수행한다.
func (c *ChannelInfoCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	query := getStringParam(params, queryParam)
	if query == "" {
		return errors.NewValidationError(adapter.ErrMissingArgument, "channel", query)
	}

	platform := c.Deps().Platform
	channel, err := platform.ResolveTextChannel(ctx, cmdCtx.GuildID, query)
	if err != nil {
		return fmt.Errorf("resolve channel: %w", err)
	}
	if channel == nil {
		return errors.NewNotFoundError("channel", query)
	}

	visible, err := platform.CanViewChannel(ctx, cmdCtx.AuthorID, channel.ID)
	if err != nil {
		return fmt.Errorf("check channel visibility: %w", err)
	}
	if !visible {
		c.log().Info("Channel info denied",
			slog.String("guild_id", cmdCtx.GuildID),
			slog.String("channel_id", channel.ID),
			slog.String("author_id", cmdCtx.AuthorID),
		)
		return c.ReplyText(ctx, cmdCtx, c.T(cmdCtx, adapter.ErrChannelHidden))
	}

	webhooks, err := platform.ChannelWebhooks(ctx, channel.ID)
	if err != nil {
		return fmt.Errorf("list webhooks: %w", err)
	}
	roleCount, userCount := channel.CountOverwrites()

	description := channel.ID
	if channel.Topic != "" {
		description = channel.Topic + "\n" + channel.ID
	}
	embed := c.Deps().Embeds.New(cmdCtx, "#"+channel.Name, description)

	if roleCount > 0 {
		adapter.AddField(embed, c.T(cmdCtx, adapter.FieldRoleCount), strconv.Itoa(roleCount), true)
	}
	if userCount > 0 {
		adapter.AddField(embed, c.T(cmdCtx, adapter.FieldUserCount), strconv.Itoa(userCount), true)
	}
	if len(webhooks) > 0 {
		adapter.AddField(embed, c.T(cmdCtx, adapter.FieldWebhookCount), strconv.Itoa(len(webhooks)), true)
	}

	return c.ReplyEmbed(ctx, cmdCtx, embed)
}

func (c *ChannelInfoCommand) ensureDeps() error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.Deps().Platform == nil {
		return fmt.Errorf("channelinfo dependencies not configured")
	}
	return nil
}
