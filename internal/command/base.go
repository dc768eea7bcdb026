package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/i18n"
)

// BaseCommand: 모든 커맨드가 공통으로 가지는 기본 의존성과 검증 로직을 제공합니다.
type BaseCommand struct {
	deps *Dependencies
}

// NewBaseCommand: 새로운 BaseCommand 인스턴스를 생성합니다.
func NewBaseCommand(deps *Dependencies) BaseCommand {
	return BaseCommand{deps: deps}
}

// EnsureBaseDeps: 기본 의존성이 올바르게 설정되었는지 검증합니다.
// 모든 커맨드에서 공통으로 필요한 SendReply, Embeds, Logger를 확인한다.
func (b *BaseCommand) EnsureBaseDeps() error {
	if b == nil || b.deps == nil {
		return fmt.Errorf("command dependencies not configured")
	}

	if b.deps.SendReply == nil {
		return fmt.Errorf("reply callback not configured")
	}

	if b.deps.Embeds == nil {
		return fmt.Errorf("embed builder not configured")
	}

	if b.deps.Logger == nil {
		b.deps.Logger = slog.Default()
	}

	return nil
}

// Deps: 의존성 객체를 반환합니다.
func (b *BaseCommand) Deps() *Dependencies {
	if b == nil {
		return nil
	}
	return b.deps
}

// T: 호출자의 언어로 문자열을 번역합니다.
func (b *BaseCommand) T(cmdCtx *domain.CommandContext, source string, params ...i18n.Param) string {
	locale := ""
	if cmdCtx != nil {
		locale = cmdCtx.Locale
	}
	return b.deps.Translator.Translate(locale, source, params...)
}

// ReplyText: 텍스트 답장을 보냅니다.
func (b *BaseCommand) ReplyText(ctx context.Context, cmdCtx *domain.CommandContext, text string) error {
	return b.deps.SendReply(ctx, cmdCtx, domain.Reply{Content: text})
}

// ReplyEmbed: 임베드 답장을 보냅니다.
func (b *BaseCommand) ReplyEmbed(ctx context.Context, cmdCtx *domain.CommandContext, embed *domain.Embed) error {
	return b.deps.SendReply(ctx, cmdCtx, domain.Reply{Embed: embed})
}

func (b *BaseCommand) log() *slog.Logger {
	if b.deps != nil && b.deps.Logger != nil {
		return b.deps.Logger
	}
	return slog.Default()
}
