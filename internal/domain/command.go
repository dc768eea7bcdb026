package domain

// CommandType 는 타입이다.
type CommandType string

// CommandType 상수 목록.
const (
	CommandRoleInfo     CommandType = "roleinfo"
	CommandChannelInfo  CommandType = "channelinfo"
	CommandWhois        CommandType = "whois"
	CommandReverseWhois CommandType = "rwhois"
	CommandHelp         CommandType = "help"
	CommandUnknown      CommandType = "unknown"
)

func (c CommandType) String() string {
	return string(c)
}

// IsValid 는 동작을 수행한다.
func (c CommandType) IsValid() bool {
	switch c {
	case CommandRoleInfo, CommandChannelInfo, CommandWhois, CommandReverseWhois,
		CommandHelp, CommandUnknown:
		return true
	default:
		return false
	}
}
