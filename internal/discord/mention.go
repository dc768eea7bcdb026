package discord

import (
	"strings"

	"github.com/Nessyi/pumpkin-management/internal/util"
)

// ParseRoleMention: "<@&id>" 또는 숫자 ID에서 역할 ID를 꺼낸다.
func ParseRoleMention(query string) (string, bool) {
	return parseMention(query, "<@&")
}

// ParseChannelMention: "<#id>" 또는 숫자 ID에서 채널 ID를 꺼낸다.
func ParseChannelMention(query string) (string, bool) {
	return parseMention(query, "<#")
}

// ParseUserMention: "<@id>", "<@!id>" 또는 숫자 ID에서 사용자 ID를 꺼낸다.
func ParseUserMention(query string) (string, bool) {
	query = util.TrimSpace(query)
	if strings.HasPrefix(query, "<@!") {
		return parseMention(query, "<@!")
	}
	if strings.HasPrefix(query, "<@&") {
		return "", false
	}
	return parseMention(query, "<@")
}

func parseMention(query, prefix string) (string, bool) {
	query = util.TrimSpace(query)
	if util.IsSnowflake(query) {
		return query, true
	}
	if !strings.HasPrefix(query, prefix) || !strings.HasSuffix(query, ">") {
		return "", false
	}
	id := query[len(prefix) : len(query)-1]
	if !util.IsSnowflake(id) {
		return "", false
	}
	return id, true
}

// stripChannelName: "#general" 형태의 입력에서 '#'을 뗀다.
func stripChannelName(query string) string {
	return strings.TrimPrefix(util.TrimSpace(query), "#")
}

// stripRoleName: "@moderator" 형태의 입력에서 '@'를 뗀다.
func stripRoleName(query string) string {
	return strings.TrimPrefix(util.TrimSpace(query), "@")
}
