package domain

import (
	"fmt"
	"time"
)

// VerifyStatus: 인증 진행 상태
type VerifyStatus int

// VerifyStatus 상수 목록.
const (
	VerifyStatusBanned   VerifyStatus = -1
	VerifyStatusNone     VerifyStatus = 0
	VerifyStatusPending  VerifyStatus = 1
	VerifyStatusVerified VerifyStatus = 2
)

// String: 상태 이름을 반환한다. 알 수 없는 값은 UNKNOWN(n)으로 표시한다.
func (s VerifyStatus) String() string {
	switch s {
	case VerifyStatusBanned:
		return "BANNED"
	case VerifyStatusNone:
		return "NONE"
	case VerifyStatusPending:
		return "PENDING"
	case VerifyStatusVerified:
		return "VERIFIED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// VerifyMember: 인증 DB에 저장된 멤버 레코드 (이 모듈에서는 읽기 전용)
type VerifyMember struct {
	ID        int64        `json:"id"`
	GuildID   string       `json:"guildId"`
	UserID    string       `json:"userId"`
	Address   string       `json:"address"`
	Code      string       `json:"code"`
	Status    VerifyStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}
