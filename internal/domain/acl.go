package domain

// ACLGroup: 역할에 연결될 수 있는 권한 그룹
type ACLGroup struct {
	ID      int64  `json:"id"`
	GuildID string `json:"guildId"`
	Name    string `json:"name"`
	Parent  string `json:"parent,omitempty"`
	RoleID  string `json:"roleId,omitempty"`
}

// ACLSubject: 권한 검사 대상 (명령어 호출자)
type ACLSubject struct {
	UserID  string
	RoleIDs []string // 포지션 오름차순 (기본 역할 → 가장 높은 역할)
}
