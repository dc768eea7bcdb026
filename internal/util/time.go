package util

import (
	"time"

	"github.com/Nessyi/pumpkin-management/internal/constants"
)

// LoadLocation: 타임존 이름으로 Location을 로드하고, 실패 시 UTC를 반환한다.
func LoadLocation(name string) *time.Location {
	name = TrimSpace(name)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatDateTime: 주어진 시간을 loc 기준 "YYYY-MM-DD HH:MM:SS" 형식으로 변환합니다.
// loc이 nil이면 시간에 포함된 Location을 그대로 사용한다.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(constants.DateTimeLayout)
}
