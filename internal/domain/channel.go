package domain

// OverwriteType: 채널 권한 덮어쓰기의 대상 종류
type OverwriteType int

// OverwriteType 상수 목록.
const (
	OverwriteRole OverwriteType = iota
	OverwriteMember
)

// Overwrite: 역할 또는 개별 멤버에 대한 채널 권한 덮어쓰기 항목
type Overwrite struct {
	ID   string        `json:"id"`
	Type OverwriteType `json:"type"`
}

// Channel: 길드 텍스트 채널 정보
type Channel struct {
	ID         string      `json:"id"`
	GuildID    string      `json:"guildId"`
	Name       string      `json:"name"`
	Topic      string      `json:"topic,omitempty"`
	Overwrites []Overwrite `json:"overwrites,omitempty"`
}

// CountOverwrites: 덮어쓰기 목록을 역할 대상과 멤버 대상으로 분류하여 개수를 반환한다.
// 두 값의 합은 항상 len(Overwrites)와 같다.
func (c *Channel) CountOverwrites() (roles, members int) {
	if c == nil {
		return 0, 0
	}
	for _, ow := range c.Overwrites {
		if ow.Type == OverwriteRole {
			roles++
		} else {
			members++
		}
	}
	return roles, members
}

// Webhook: 채널에 등록된 웹훅
type Webhook struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
