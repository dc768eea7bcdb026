// Package discord: Discord 게이트웨이/REST 접근을 도메인 타입 기반 인터페이스로 감싼다.
package discord

import (
	"context"

	"github.com/Nessyi/pumpkin-management/internal/domain"
)

// Platform: 명령어가 사용하는 채팅 플랫폼 기능
// Resolve* 와 Member 는 대상이 없으면 (nil, nil)을 반환한다.
type Platform interface {
	ResolveRole(ctx context.Context, guildID, query string) (*domain.Role, error)
	ResolveTextChannel(ctx context.Context, guildID, query string) (*domain.Channel, error)
	ResolveMember(ctx context.Context, guildID, query string) (*domain.Member, error)
	Member(ctx context.Context, guildID, userID string) (*domain.Member, error)
	ChannelWebhooks(ctx context.Context, channelID string) ([]domain.Webhook, error)
	CanViewChannel(ctx context.Context, userID, channelID string) (bool, error)
	Reply(ctx context.Context, cmdCtx *domain.CommandContext, reply domain.Reply) error
}

// MessageHandler: 수신 메시지 처리 함수
type MessageHandler func(ctx context.Context, msg *domain.IncomingMessage)
