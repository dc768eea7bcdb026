package domain

import "time"

// EmbedField: 임베드 필드 한 개
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// EmbedFooter 는 타입이다.
type EmbedFooter struct {
	Text    string
	IconURL string
}

// Embed: 플랫폼 독립적인 리치 메시지 표현
type Embed struct {
	Title        string
	Description  string
	Color        int
	Fields       []EmbedField
	ThumbnailURL string
	Footer       *EmbedFooter
	Timestamp    time.Time
}

// AddField: 필드를 추가한다. inline 기본값은 true다.
func (e *Embed) AddField(name, value string, inline ...bool) {
	isInline := true
	if len(inline) > 0 {
		isInline = inline[0]
	}
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: isInline})
}

// Field: 이름으로 필드를 찾는다.
func (e *Embed) Field(name string) (EmbedField, bool) {
	if e == nil {
		return EmbedField{}, false
	}
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return EmbedField{}, false
}

// Reply: 명령어 응답 (텍스트 또는 임베드)
type Reply struct {
	Content string
	Embed   *Embed
}
