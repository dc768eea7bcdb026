package adapter

// 응답 문자열 상수. 번역 카탈로그(i18n/locales)의 키로도 쓰인다.
const (
	// 공통
	MsgYes = "Yes"
	MsgNo  = "No"

	// roleinfo
	FieldMemberCount = "Member count"
	FieldTaggable    = "Taggable"
	FieldACLGroup    = "ACL group"

	// channelinfo
	FieldRoleCount    = "Role count"
	FieldUserCount    = "User count"
	FieldWebhookCount = "Webhook count"
	ErrChannelHidden  = "You don't have permission to view information about this channel."

	// whois / rwhois
	TitleWhois              = "Whois"
	FieldAddress            = "Address"
	FieldVerificationCode   = "Verification code"
	FieldVerificationStatus = "Verification status"
	FieldTimestamp          = "Timestamp"
	FieldRoles              = "Roles"
	MsgNoSuchUser           = "No such user."
	MsgNotInDatabase        = "Member is not in a database."

	// help
	TitleHelp = "Available commands"

	// 디스패치 / 에러 매핑
	ErrPermissionDenied = "You don't have permission to run this command."
	ErrGuildOnly        = "This command can't be used in direct messages."
	ErrRateLimited      = "You are sending commands too quickly. Try again later."
	ErrCommandFailed    = "Command {name} failed."
	ErrMissingArgument  = "Missing argument: {name}."
	ErrInvalidArgument  = "Invalid argument: {name}."
	ErrRoleNotFound     = "Role {query} not found."
	ErrChannelNotFound  = "Channel {query} not found."
	ErrMemberNotFound   = "Member {query} not found."
)

// 명령어 설명
const (
	DescRoleInfo     = "Show information about a role."
	DescChannelInfo  = "Show information about a channel."
	DescWhois        = "Show verification information about a member."
	DescReverseWhois = "Find a member by their verification address."
	DescHelp         = "List available commands."
)
