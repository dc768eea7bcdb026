package domain

import "time"

// CommandContext 는 명령어 호출 한 건의 실행 문맥이다.
type CommandContext struct {
	GuildID         string // 길드 ID (DM이면 빈 문자열)
	ChannelID       string // 명령어가 입력된 채널
	MessageID       string // 답장 대상 메시지
	AuthorID        string
	AuthorName      string // 표시 이름
	AuthorAvatarURL string
	AuthorRoleIDs   []string // 게이트웨이가 보낸 순서 그대로 (포지션 정렬 아님)
	Locale          string   // 번역 조회용 언어 코드
	Message         string
	Timestamp       time.Time
}

// NewCommandContext 는 동작을 수행한다.
func NewCommandContext(guildID, channelID, messageID, authorID, authorName, message string) *CommandContext {
	return &CommandContext{
		GuildID:    guildID,
		ChannelID:  channelID,
		MessageID:  messageID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

// InGuild: 길드 채널에서 호출되었는지 여부
func (c *CommandContext) InGuild() bool {
	return c != nil && c.GuildID != ""
}
