package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/discord"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/i18n"
)

// Command: 봇 명령어를 처리하는 인터페이스 정의 (이름, 설명, 실행 로직)
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error
}

// Event: 명령어 실행 이벤트 정보 (타입 및 파라미터 포함)
type Event struct {
	Type   domain.CommandType
	Params map[string]any
}

// Dispatcher: 명령어 이벤트를 발행하여 적절한 처리기로 전달하는 인터페이스
type Dispatcher interface {
	Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...Event) (int, error)
}

// GroupLookup: 역할에 연결된 ACL 그룹 조회
type GroupLookup interface {
	GetGroupByRole(ctx context.Context, guildID, roleID string) (*domain.ACLGroup, error)
}

// VerifyStore: 인증 DB 조회 (읽기 전용)
type VerifyStore interface {
	GetByMember(ctx context.Context, guildID, userID string) (*domain.VerifyMember, error)
	GetByAddress(ctx context.Context, guildID, address string) (*domain.VerifyMember, error)
}

// ActivityLogger: 길드 활동 로그 기록
type ActivityLogger interface {
	GuildInfo(cmdCtx *domain.CommandContext, message string)
}

// Dependencies: 명령어 실행에 필요한 외부 서비스 및 유틸리티 의존성 모음
type Dependencies struct {
	Platform   discord.Platform
	ACL        GroupLookup
	Verify     VerifyStore
	Activity   ActivityLogger
	Translator *i18n.Translator
	Embeds     *adapter.EmbedBuilder
	Location   *time.Location // 타임스탬프 표시용
	SendReply  func(ctx context.Context, cmdCtx *domain.CommandContext, reply domain.Reply) error
	Logger     *slog.Logger
}
