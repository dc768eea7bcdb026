package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

// RoleInfoCommand: 역할의 멤버 수, 멘션 가능 여부, 연결된 ACL 그룹을 보여준다.
type RoleInfoCommand struct {
	BaseCommand
}

// NewRoleInfoCommand 는 동작을 수행한다.
func NewRoleInfoCommand(deps *Dependencies) *RoleInfoCommand {
	return &RoleInfoCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name 는 동작을 수행한다.
func (c *RoleInfoCommand) Name() string {
	return string(domain.CommandRoleInfo)
}

// Description 는 동작을 수행한다.
func (c *RoleInfoCommand) Description() string {
	return adapter.DescRoleInfo
}

// Execute 는 동작을 수행한다.
func (c *RoleInfoCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	query := getStringParam(params, queryParam)
	if query == "" {
		return errors.NewValidationError(adapter.ErrMissingArgument, "role", query)
	}

	role, err := c.Deps().Platform.ResolveRole(ctx, cmdCtx.GuildID, query)
	if err != nil {
		return fmt.Errorf("resolve role: %w", err)
	}
	if role == nil {
		return errors.NewNotFoundError("role", query)
	}

	group, err := c.Deps().ACL.GetGroupByRole(ctx, cmdCtx.GuildID, role.ID)
	if err != nil {
		return fmt.Errorf("get acl group: %w", err)
	}

	embed := c.Deps().Embeds.New(cmdCtx, role.Name, role.ID)
	adapter.AddField(embed, c.T(cmdCtx, adapter.FieldMemberCount), strconv.Itoa(len(role.Members)), true)

	taggable := c.T(cmdCtx, adapter.MsgNo)
	if role.Mentionable {
		taggable = c.T(cmdCtx, adapter.MsgYes)
	}
	adapter.AddField(embed, c.T(cmdCtx, adapter.FieldTaggable), taggable, true)

	if group != nil {
		adapter.AddField(embed, c.T(cmdCtx, adapter.FieldACLGroup), group.Name, true)
	}

	return c.ReplyEmbed(ctx, cmdCtx, embed)
}

func (c *RoleInfoCommand) ensureDeps() error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.Deps().Platform == nil || c.Deps().ACL == nil {
		return fmt.Errorf("roleinfo dependencies not configured")
	}
	return nil
}
