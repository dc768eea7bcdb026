package adapter

import (
	"strings"

	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/util"
)

// MessageAdapter: 접두사가 붙은 채팅 메시지를 명령어로 해석한다.
type MessageAdapter struct {
	prefix string
}

// NewMessageAdapter 는 동작을 수행한다.
func NewMessageAdapter(prefix string) *MessageAdapter {
	if util.TrimSpace(prefix) == "" {
		prefix = "!"
	}
	return &MessageAdapter{prefix: prefix}
}

// Prefix: 현재 설정된 명령어 접두사를 반환한다.
func (ma *MessageAdapter) Prefix() string {
	return ma.prefix
}

// ParsedCommand 는 타입이다.
type ParsedCommand struct {
	Type       domain.CommandType
	Params     map[string]any
	RawMessage string
}

var commandAliases = map[string]domain.CommandType{
	"roleinfo":    domain.CommandRoleInfo,
	"role":        domain.CommandRoleInfo,
	"channelinfo": domain.CommandChannelInfo,
	"channel":     domain.CommandChannelInfo,
	"whois":       domain.CommandWhois,
	"rwhois":      domain.CommandReverseWhois,
	"help":        domain.CommandHelp,
	"commands":    domain.CommandHelp,
}

// ParseMessage: 메시지 본문을 명령어와 인자(query)로 분리한다.
// 접두사가 없거나 등록되지 않은 명령어는 CommandUnknown으로 반환한다.
func (ma *MessageAdapter) ParseMessage(content string) *ParsedCommand {
	text := util.TrimSpace(content)
	if text == "" || !strings.HasPrefix(text, ma.prefix) {
		return ma.createUnknownCommand(text)
	}

	commandText := util.TrimSpace(text[len(ma.prefix):])
	parts := strings.Fields(commandText)
	if len(parts) == 0 {
		return ma.createUnknownCommand(text)
	}

	command := util.Normalize(parts[0])
	cmdType, ok := commandAliases[command]
	if !ok {
		return ma.createUnknownCommand(text)
	}

	params := make(map[string]any)
	// 인자 내부 공백은 보존한다. (역할/채널 이름에 공백이 들어갈 수 있음)
	if query := util.TrimSpace(commandText[len(parts[0]):]); query != "" {
		params["query"] = query
	}

	return &ParsedCommand{Type: cmdType, Params: params, RawMessage: text}
}

func (ma *MessageAdapter) createUnknownCommand(text string) *ParsedCommand {
	return &ParsedCommand{
		Type:       domain.CommandUnknown,
		Params:     make(map[string]any),
		RawMessage: text,
	}
}
