package acl

import "time"

// Group: 권한 그룹 GORM 모델. RoleID가 0이면 역할에 연결되지 않은 그룹이다.
type Group struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	GuildID   int64  `gorm:"not null;uniqueIndex:idx_acl_groups_guild_name"`
	Name      string `gorm:"size:64;not null;uniqueIndex:idx_acl_groups_guild_name"`
	Parent    string `gorm:"size:64"`
	RoleID    int64  `gorm:"index"`
	CreatedAt time.Time
}

// TableName 는 동작을 수행한다.
func (Group) TableName() string {
	return "acl_groups"
}

// Rule: 명령어별 기본 허용 여부
type Rule struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	GuildID      int64  `gorm:"not null;uniqueIndex:idx_acl_rules_guild_command"`
	Command      string `gorm:"size:64;not null;uniqueIndex:idx_acl_rules_guild_command"`
	DefaultAllow bool   `gorm:"not null"`
}

// TableName 는 동작을 수행한다.
func (Rule) TableName() string {
	return "acl_rules"
}

// RuleGroup: 규칙에 대한 그룹별 허용/거부
type RuleGroup struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	RuleID  int64 `gorm:"not null;uniqueIndex:idx_acl_rule_groups_rule_group"`
	GroupID int64 `gorm:"not null;uniqueIndex:idx_acl_rule_groups_rule_group"`
	Allow   bool  `gorm:"not null"`
}

// TableName 는 동작을 수행한다.
func (RuleGroup) TableName() string {
	return "acl_rule_groups"
}

// UserOverwrite: 특정 사용자에 대한 명령어 허용/거부 (그룹 판정보다 우선)
type UserOverwrite struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	GuildID int64  `gorm:"not null;uniqueIndex:idx_acl_user_overwrites_key"`
	Command string `gorm:"size:64;not null;uniqueIndex:idx_acl_user_overwrites_key"`
	UserID  int64  `gorm:"not null;uniqueIndex:idx_acl_user_overwrites_key"`
	Allow   bool   `gorm:"not null"`
}

// TableName 는 동작을 수행한다.
func (UserOverwrite) TableName() string {
	return "acl_user_overwrites"
}
