package domain

// IncomingMessage: 게이트웨이에서 수신한 채팅 메시지 (플랫폼 구조체에서 변환됨)
type IncomingMessage struct {
	GuildID         string
	ChannelID       string
	MessageID       string
	AuthorID        string
	AuthorName      string
	AuthorAvatarURL string
	AuthorBot       bool
	AuthorRoleIDs   []string // 게이트웨이가 보낸 순서 그대로 (포지션 정렬 아님)
	Content         string
}
