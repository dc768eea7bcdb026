package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/util"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

// WhoisCommand: 멤버(또는 사용자 ID)의 인증 DB 정보와 길드 정보를 보여준다.
type WhoisCommand struct {
	BaseCommand
}

// NewWhoisCommand 는 동작을 수행한다.
func NewWhoisCommand(deps *Dependencies) *WhoisCommand {
	return &WhoisCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name 는 동작을 수행한다.
func (c *WhoisCommand) Name() string {
	return string(domain.CommandWhois)
}

// Description 는 동작을 수행한다.
func (c *WhoisCommand) Description() string {
	return adapter.DescWhois
}

// Execute 는 동작을 수행한다.
func (c *WhoisCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := ensureWhoisDeps(&c.BaseCommand); err != nil {
		return err
	}

	query := getStringParam(params, queryParam)
	if query == "" {
		return errors.NewValidationError(adapter.ErrMissingArgument, "member", query)
	}

	platform := c.Deps().Platform

	// 멤버로 변환되지 않으면 숫자 ID로 취급한다.
	dcMember, err := platform.ResolveMember(ctx, cmdCtx.GuildID, query)
	if err != nil {
		return fmt.Errorf("resolve member: %w", err)
	}

	var userID string
	switch {
	case dcMember != nil:
		userID = dcMember.ID
	case util.IsSnowflake(query):
		userID = query
	case util.IsDigits(query):
		// 저장 범위를 벗어난 숫자 ID는 어떤 기록과도 일치하지 않는다.
		return c.ReplyText(ctx, cmdCtx, c.T(cmdCtx, adapter.MsgNoSuchUser))
	default:
		return errors.NewNotFoundError("member", query)
	}

	dbMember, err := c.Deps().Verify.GetByMember(ctx, cmdCtx.GuildID, userID)
	if err != nil {
		return fmt.Errorf("get verify member: %w", err)
	}

	if dbMember != nil && dcMember == nil {
		dcMember, err = platform.Member(ctx, cmdCtx.GuildID, dbMember.UserID)
		if err != nil {
			return fmt.Errorf("get guild member: %w", err)
		}
	}

	if dbMember == nil && dcMember == nil {
		return c.ReplyText(ctx, cmdCtx, c.T(cmdCtx, adapter.MsgNoSuchUser))
	}

	if err := whoisReply(ctx, &c.BaseCommand, cmdCtx, dbMember, dcMember); err != nil {
		return err
	}

	target := userID
	if dcMember != nil && dcMember.Username != "" {
		target = dcMember.Username
	}
	c.Deps().Activity.GuildInfo(cmdCtx, fmt.Sprintf("Whois lookup for %s.", target))
	return nil
}

// ReverseWhoisCommand: 인증 주소로 멤버를 역조회한다.
type ReverseWhoisCommand struct {
	BaseCommand
}

// NewReverseWhoisCommand 는 동작을 수행한다.
func NewReverseWhoisCommand(deps *Dependencies) *ReverseWhoisCommand {
	return &ReverseWhoisCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name 는 동작을 수행한다.
func (c *ReverseWhoisCommand) Name() string {
	return string(domain.CommandReverseWhois)
}

// Description 는 동작을 수행한다.
func (c *ReverseWhoisCommand) Description() string {
	return adapter.DescReverseWhois
}

// Execute 는 동작을 수행한다.
func (c *ReverseWhoisCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := ensureWhoisDeps(&c.BaseCommand); err != nil {
		return err
	}

	address := getStringParam(params, queryParam)
	if address == "" {
		return errors.NewValidationError(adapter.ErrMissingArgument, "address", address)
	}

	dbMember, err := c.Deps().Verify.GetByAddress(ctx, cmdCtx.GuildID, address)
	if err != nil {
		return fmt.Errorf("get verify member by address: %w", err)
	}
	if dbMember == nil {
		return c.ReplyText(ctx, cmdCtx, c.T(cmdCtx, adapter.MsgNotInDatabase))
	}

	// 길드를 떠난 멤버는 nil
	dcMember, err := c.Deps().Platform.Member(ctx, cmdCtx.GuildID, dbMember.UserID)
	if err != nil {
		return fmt.Errorf("get guild member: %w", err)
	}

	if err := whoisReply(ctx, &c.BaseCommand, cmdCtx, dbMember, dcMember); err != nil {
		return err
	}
	c.Deps().Activity.GuildInfo(cmdCtx, fmt.Sprintf("Reverse whois lookup for %s.", address))
	return nil
}

// whoisReply: 인증 레코드와 길드 멤버 중 최소 하나로 whois 임베드를 만들어 답장한다.
func whoisReply(ctx context.Context, b *BaseCommand, cmdCtx *domain.CommandContext, dbMember *domain.VerifyMember, dcMember *domain.Member) error {
	var description string
	if dcMember != nil {
		description = fmt.Sprintf("%s (%s)", dcMember.Name(), dcMember.ID)
	} else {
		description = dbMember.UserID
	}

	embed := b.Deps().Embeds.New(cmdCtx, b.T(cmdCtx, adapter.TitleWhois), description)

	if dbMember != nil {
		adapter.AddField(embed, b.T(cmdCtx, adapter.FieldAddress), dbMember.Address, false)
		adapter.AddField(embed, b.T(cmdCtx, adapter.FieldVerificationCode), "`"+dbMember.Code+"`", true)
		adapter.AddField(embed, b.T(cmdCtx, adapter.FieldVerificationStatus), dbMember.Status.String(), true)
		adapter.AddField(embed, b.T(cmdCtx, adapter.FieldTimestamp), util.FormatDateTime(dbMember.Timestamp, b.Deps().Location), false)
	}

	if dcMember != nil {
		embed.ThumbnailURL = dcMember.AvatarURL
		if roles := dcMember.RoleNamesHighestFirst(); len(roles) > 0 {
			adapter.AddField(embed, b.T(cmdCtx, adapter.FieldRoles), strings.Join(roles, ", "), true)
		}
	}

	return b.ReplyEmbed(ctx, cmdCtx, embed)
}

func ensureWhoisDeps(b *BaseCommand) error {
	if err := b.EnsureBaseDeps(); err != nil {
		return err
	}
	deps := b.Deps()
	if deps.Platform == nil || deps.Verify == nil || deps.Activity == nil {
		return fmt.Errorf("whois dependencies not configured")
	}
	return nil
}
