package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/domain"
)

// HelpCommand 는 타입이다.
type HelpCommand struct {
	BaseCommand
	registry *Registry
	prefix   string
}

// NewHelpCommand 는 동작을 수행한다.
func NewHelpCommand(deps *Dependencies, registry *Registry, prefix string) *HelpCommand {
	return &HelpCommand{BaseCommand: NewBaseCommand(deps), registry: registry, prefix: prefix}
}

// Name 는 동작을 수행한다.
func (c *HelpCommand) Name() string {
	return string(domain.CommandHelp)
}

// Description 는 동작을 수행한다.
func (c *HelpCommand) Description() string {
	return adapter.DescHelp
}

// Execute 는 동작을 수행한다.
func (c *HelpCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, _ map[string]any) error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.registry == nil {
		return fmt.Errorf("help command registry not configured")
	}

	lines := make([]string, 0, c.registry.Count())
	for _, cmd := range c.registry.List() {
		lines = append(lines, fmt.Sprintf("`%s%s` %s", c.prefix, cmd.Name(), c.T(cmdCtx, cmd.Description())))
	}

	embed := c.Deps().Embeds.New(cmdCtx, c.T(cmdCtx, adapter.TitleHelp), strings.Join(lines, "\n"))
	return c.ReplyEmbed(ctx, cmdCtx, embed)
}
