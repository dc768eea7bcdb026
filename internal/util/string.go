package util

import (
	"fmt"
	"strconv"
	"strings"
)

// TruncateString: 주어진 문자열을 최대 길이(Rune 기준)로 자르고, 초과 시 "..."을 붙여 반환합니다.
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TrimSpace: 문자열 양쪽 끝의 공백을 제거한다. (strings.TrimSpace 래퍼)
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// Normalize: 문자열을 소문자로 변환하고 양쪽 공백을 제거합니다.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Contains: 문자열 슬라이스에 특정 문자열이 포함되어 있는지 확인합니다.
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// IsDigits: 비어있지 않고 ASCII 숫자로만 이루어져 있는지 확인한다.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsSnowflake: Discord 스노우플레이크(BIGINT에 저장 가능한 양의 정수) 형식인지 확인한다.
func IsSnowflake(s string) bool {
	if s == "" || len(s) > 19 {
		return false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	return err == nil && id > 0
}

// ParseSnowflake: 스노우플레이크 문자열을 DB 저장용 int64로 변환한다.
func ParseSnowflake(s string) (int64, error) {
	s = TrimSpace(s)
	if !IsSnowflake(s) {
		return 0, fmt.Errorf("invalid snowflake: %q", s)
	}
	return strconv.ParseInt(s, 10, 64)
}

// FormatSnowflake: DB에 저장된 int64 값을 스노우플레이크 문자열로 변환한다.
func FormatSnowflake(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
