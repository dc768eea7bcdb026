package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/command"
	"github.com/Nessyi/pumpkin-management/internal/config"
	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/discord"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/i18n"
	"github.com/Nessyi/pumpkin-management/internal/service/acl"
	"github.com/Nessyi/pumpkin-management/internal/service/activity"
	appErrors "github.com/Nessyi/pumpkin-management/pkg/errors"
)

// errAccessDenied: ACL 검사에서 거부된 명령어 (사용자 메시지로만 변환된다)
var errAccessDenied = errors.New("access denied")

// Bot: 관리 봇의 핵심 상태와 의존성(플랫폼, ACL, 번역기, 명령어 레지스트리)을 관리하는 메인 구조체
type Bot struct {
	config          *config.Config
	logger          *slog.Logger
	platform        discord.Platform
	messageAdapter  *adapter.MessageAdapter
	embeds          *adapter.EmbedBuilder
	translator      *i18n.Translator
	locales         *i18n.LocaleResolver
	acl             *acl.Service
	activity        *activity.Logger
	limiter         *commandLimiter
	commandRegistry *command.Registry
	dispatcher      command.Dispatcher
	commandDeps     *command.Dependencies
}

// NewBot: 필요한 의존성(Dependencies)을 주입받아 새로운 Bot 인스턴스를 생성하고 초기화한다.
func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil {
		return nil, fmt.Errorf("bot dependencies are required")
	}
	if deps.Config == nil {
		return nil, fmt.Errorf("config dependency is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger dependency is required")
	}
	if deps.Platform == nil {
		return nil, fmt.Errorf("platform dependency is required")
	}
	if deps.Translator == nil {
		return nil, fmt.Errorf("translator dependency is required")
	}
	if deps.ACL == nil {
		return nil, fmt.Errorf("acl dependency is required")
	}
	if deps.Verify == nil {
		return nil, fmt.Errorf("verify repository dependency is required")
	}
	if deps.Activity == nil {
		return nil, fmt.Errorf("activity logger dependency is required")
	}

	messageAdapter := deps.MessageAdapter
	if messageAdapter == nil {
		messageAdapter = adapter.NewMessageAdapter(deps.Config.Bot.Prefix)
	}
	embeds := deps.Embeds
	if embeds == nil {
		embeds = adapter.NewEmbedBuilder(deps.Config.Bot.EmbedColor)
	}

	bot := &Bot{
		config:         deps.Config,
		logger:         deps.Logger,
		platform:       deps.Platform,
		messageAdapter: messageAdapter,
		embeds:         embeds,
		translator:     deps.Translator,
		locales:        deps.Locales,
		acl:            deps.ACL,
		activity:       deps.Activity,
		limiter:        newCommandLimiter(),
	}

	bot.initializeCommands(deps)

	return bot, nil
}

func (b *Bot) initializeCommands(deps *Dependencies) {
	registry := command.NewRegistry()
	b.commandRegistry = registry

	b.commandDeps = &command.Dependencies{
		Platform:   b.platform,
		ACL:        deps.ACL,
		Verify:     deps.Verify,
		Activity:   deps.Activity,
		Translator: b.translator,
		Embeds:     b.embeds,
		Location:   b.config.Locale.Location(),
		SendReply:  b.platform.Reply,
		Logger:     b.logger,
	}
	b.dispatcher = command.NewSequentialDispatcher(registry, nil)

	commandsList := []command.Command{
		command.NewRoleInfoCommand(b.commandDeps),
		command.NewChannelInfoCommand(b.commandDeps),
		command.NewWhoisCommand(b.commandDeps),
		command.NewReverseWhoisCommand(b.commandDeps),
		command.NewHelpCommand(b.commandDeps, registry, b.messageAdapter.Prefix()),
	}
	for _, cmd := range commandsList {
		registry.Register(cmd)
	}

	b.logger.Info("Commands initialized", slog.Int("count", registry.Count()))
}

// HandleMessage: 게이트웨이로부터 수신한 메시지를 처리한다.
// app 런타임의 워커 풀에서 호출되며, 메시지마다 독립적으로 실행된다.
func (b *Bot) HandleMessage(ctx context.Context, msg *domain.IncomingMessage) {
	if msg == nil || msg.AuthorBot {
		return
	}

	commandType := domain.CommandUnknown.String()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic in HandleMessage",
				slog.Any("panic", r),
				slog.String("command", commandType),
			)
		}
	}()

	parsed := b.messageAdapter.ParseMessage(msg.Content)
	if parsed == nil || parsed.Type == domain.CommandUnknown {
		return
	}
	commandType = parsed.Type.String()

	b.logger.Info("Command received",
		slog.String("raw", parsed.RawMessage),
		slog.String("type", commandType),
		slog.String("guild_id", msg.GuildID),
		slog.String("channel_id", msg.ChannelID),
		slog.String("author_id", msg.AuthorID),
		slog.String("author_name", msg.AuthorName),
	)

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout.BotCommand)
	defer cancel()

	cmdCtx := domain.NewCommandContext(msg.GuildID, msg.ChannelID, msg.MessageID, msg.AuthorID, msg.AuthorName, msg.Content)
	cmdCtx.AuthorAvatarURL = msg.AuthorAvatarURL
	cmdCtx.AuthorRoleIDs = msg.AuthorRoleIDs
	cmdCtx.Locale = b.config.Locale.Default

	if !cmdCtx.InGuild() {
		b.reply(ctx, cmdCtx, b.translator.Translate(cmdCtx.Locale, adapter.ErrGuildOnly))
		return
	}

	if b.locales != nil {
		cmdCtx.Locale = b.locales.Resolve(ctx, cmdCtx.GuildID, cmdCtx.AuthorID)
	}

	if !b.config.Bot.IsOwner(cmdCtx.AuthorID) && !b.limiter.Allow(cmdCtx.GuildID, cmdCtx.AuthorID) {
		b.logger.Warn("Command rate limited",
			slog.String("command", commandType),
			slog.String("guild_id", cmdCtx.GuildID),
			slog.String("author_id", cmdCtx.AuthorID),
		)
		b.reply(ctx, cmdCtx, b.translator.Translate(cmdCtx.Locale, adapter.ErrRateLimited))
		return
	}

	if err := b.executeCommand(ctx, cmdCtx, parsed); err != nil {
		if !errors.Is(err, errAccessDenied) {
			b.logger.Error("Failed to execute command",
				slog.String("command", commandType),
				slog.String("guild_id", cmdCtx.GuildID),
				slog.Any("error", err),
			)
		}
		b.reply(ctx, cmdCtx, b.getErrorMessage(cmdCtx, err, commandType))
	}
}

func (b *Bot) executeCommand(ctx context.Context, cmdCtx *domain.CommandContext, parsed *adapter.ParsedCommand) error {
	subject, err := b.aclSubject(ctx, cmdCtx)
	if err != nil {
		return err
	}
	allowed, err := b.acl.Check(ctx, cmdCtx.GuildID, parsed.Type.String(), subject)
	if err != nil {
		return fmt.Errorf("acl check: %w", err)
	}
	if !allowed {
		b.logger.Info("Command denied by ACL",
			slog.String("command", parsed.Type.String()),
			slog.String("guild_id", cmdCtx.GuildID),
			slog.String("author_id", cmdCtx.AuthorID),
		)
		b.activity.GuildWarning(cmdCtx, fmt.Sprintf("Access to %s denied.", parsed.Type.String()))
		return errAccessDenied
	}

	if _, err := b.dispatcher.Publish(ctx, cmdCtx, command.Event{Type: parsed.Type, Params: parsed.Params}); err != nil {
		return fmt.Errorf("execute command: %w", err)
	}
	return nil
}

// aclSubject: 호출자의 역할을 포지션 순서(기본 역할이 맨 앞)로 구성한다.
// 메시지에 실린 역할 ID는 플랫폼이 보낸 임의 순서이므로 멤버 조회 결과를 우선한다.
func (b *Bot) aclSubject(ctx context.Context, cmdCtx *domain.CommandContext) (domain.ACLSubject, error) {
	subject := domain.ACLSubject{UserID: cmdCtx.AuthorID}
	if b.config.Bot.IsOwner(cmdCtx.AuthorID) {
		return subject, nil
	}

	member, err := b.platform.Member(ctx, cmdCtx.GuildID, cmdCtx.AuthorID)
	if err != nil {
		return subject, fmt.Errorf("resolve command author: %w", err)
	}
	if member != nil {
		subject.RoleIDs = member.RoleIDs()
		return subject, nil
	}

	b.logger.Warn("Command author not resolvable, using default role only",
		slog.String("guild_id", cmdCtx.GuildID),
		slog.String("author_id", cmdCtx.AuthorID),
	)
	subject.RoleIDs = []string{cmdCtx.GuildID}
	return subject, nil
}

func (b *Bot) reply(ctx context.Context, cmdCtx *domain.CommandContext, text string) {
	if err := b.platform.Reply(ctx, cmdCtx, domain.Reply{Content: text}); err != nil {
		serviceErr := appErrors.NewServiceError("failed to send reply", "discord", "reply", err)
		b.logger.Error("Failed to send reply",
			slog.String("channel_id", cmdCtx.ChannelID),
			slog.Any("error", serviceErr),
		)
	}
}

func (b *Bot) getErrorMessage(cmdCtx *domain.CommandContext, err error, commandType string) string {
	t := func(source string, params ...i18n.Param) string {
		return b.translator.Translate(cmdCtx.Locale, source, params...)
	}

	if errors.Is(err, errAccessDenied) {
		return t(adapter.ErrPermissionDenied)
	}

	// 인자를 역할/채널/멤버로 변환하지 못한 경우
	var notFoundErr *appErrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		query := i18n.P("query", notFoundErr.Query)
		switch notFoundErr.Kind {
		case "role":
			return t(adapter.ErrRoleNotFound, query)
		case "channel":
			return t(adapter.ErrChannelNotFound, query)
		default:
			return t(adapter.ErrMemberNotFound, query)
		}
	}

	var validationErr *appErrors.ValidationError
	if errors.As(err, &validationErr) {
		name := i18n.P("name", validationErr.Field)
		if validationErr.Message == adapter.ErrMissingArgument {
			return t(adapter.ErrMissingArgument, name)
		}
		return t(adapter.ErrInvalidArgument, name)
	}

	return t(adapter.ErrCommandFailed, i18n.P("name", commandType))
}
