package domain

// Role: 길드 역할 정보 (Members는 역할을 가진 멤버 ID 목록)
type Role struct {
	ID          string   `json:"id"`
	GuildID     string   `json:"guildId"`
	Name        string   `json:"name"`
	Position    int      `json:"position"`
	Mentionable bool     `json:"mentionable"`
	Members     []string `json:"members,omitempty"`
}

// IsDefault: 길드 기본 역할(@everyone) 여부. 기본 역할의 ID는 길드 ID와 같다.
func (r Role) IsDefault() bool {
	return r.GuildID != "" && r.ID == r.GuildID
}

// Member: 길드 멤버 정보
// Roles는 플랫폼 순서(포지션 오름차순, 기본 역할이 맨 앞)를 따른다.
type Member struct {
	ID          string `json:"id"`
	GuildID     string `json:"guildId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Roles       []Role `json:"roles,omitempty"`
}

// Name: 표시 이름이 비어있으면 사용자 이름을 반환한다.
func (m *Member) Name() string {
	if m == nil {
		return ""
	}
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Username
}

// RoleIDs 는 동작을 수행한다.
func (m *Member) RoleIDs() []string {
	if m == nil {
		return nil
	}
	ids := make([]string, 0, len(m.Roles))
	for _, r := range m.Roles {
		ids = append(ids, r.ID)
	}
	return ids
}

// RoleNamesHighestFirst: 기본 역할을 제외한 역할 이름을 높은 역할부터 반환한다.
func (m *Member) RoleNamesHighestFirst() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Roles))
	for i := len(m.Roles) - 1; i >= 0; i-- {
		if m.Roles[i].IsDefault() {
			continue
		}
		names = append(names, m.Roles[i].Name)
	}
	return names
}
