package adapter

import (
	"time"

	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/util"
)

// EmbedBuilder: 명령어 응답용 임베드의 공통 틀(색상, 호출자 푸터, 시각)을 만든다.
type EmbedBuilder struct {
	color int
	now   func() time.Time
}

// NewEmbedBuilder 는 동작을 수행한다.
func NewEmbedBuilder(color int) *EmbedBuilder {
	if color <= 0 {
		color = constants.DiscordConfig.DefaultEmbedColor
	}
	return &EmbedBuilder{color: color, now: time.Now}
}

// WithClock: 임베드 시각에 사용할 시계를 교체한다. (테스트용)
func (b *EmbedBuilder) WithClock(now func() time.Time) *EmbedBuilder {
	b.now = now
	return b
}

// New: 제목과 설명을 가진 새 임베드를 만든다. 푸터에는 명령어 호출자가 표시된다.
func (b *EmbedBuilder) New(cmdCtx *domain.CommandContext, title, description string) *domain.Embed {
	embed := &domain.Embed{
		Title:       title,
		Description: description,
		Color:       b.color,
		Timestamp:   b.now(),
	}
	if cmdCtx != nil && cmdCtx.AuthorName != "" {
		embed.Footer = &domain.EmbedFooter{
			Text:    cmdCtx.AuthorName,
			IconURL: cmdCtx.AuthorAvatarURL,
		}
	}
	return embed
}

// AddField: 플랫폼 제한(필드 개수, 값 길이)에 맞춰 필드를 추가한다.
// 제한을 넘는 필드는 버리고 false를 반환한다.
func AddField(embed *domain.Embed, name, value string, inline bool) bool {
	if embed == nil || len(embed.Fields) >= constants.DiscordConfig.MaxEmbedFields {
		return false
	}
	if value == "" {
		value = "-"
	}
	embed.AddField(name, util.TruncateString(value, constants.DiscordConfig.MaxFieldValue), inline)
	return true
}
