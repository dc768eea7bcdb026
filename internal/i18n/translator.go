// Package i18n: 명령어 응답 문자열 번역과 길드/멤버별 언어 선택을 담당한다.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Context: 이 모듈의 번역 카탈로그 네임스페이스
const Context = "mgmt"

//go:embed locales/*.yaml
var localeFS embed.FS

// Param: 번역 문자열의 {key} 자리표시자 치환 값
type Param struct {
	Key   string
	Value any
}

// P 는 동작을 수행한다.
func P(key string, value any) Param {
	return Param{Key: key, Value: value}
}

// Translator: 원문 문자열을 키로 하는 카탈로그 기반 번역기
// 카탈로그에 없는 문자열은 원문을 그대로 반환한다.
type Translator struct {
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	catalogs map[language.Tag]map[string]map[string]string // tag → context → source → text
}

// NewTranslator: 내장된 YAML 카탈로그를 읽어 번역기를 생성한다.
func NewTranslator(defaultLocale string) (*Translator, error) {
	return NewTranslatorFS(localeFS, "locales", defaultLocale)
}

// NewTranslatorFS: 지정된 파일 시스템의 dir 아래 <locale>.yaml 파일들로 번역기를 생성한다.
func NewTranslatorFS(fsys fs.FS, dir, defaultLocale string) (*Translator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locale dir failed: %w", err)
	}

	catalogs := make(map[language.Tag]map[string]map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(name, ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("invalid locale file name %q: %w", name, err)
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read locale file failed: %w", err)
		}

		var catalog map[string]map[string]string
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("unmarshal locale %q failed: %w", name, err)
		}
		catalogs[tag] = catalog
	}

	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		fallback = language.English
	}

	// 기본 언어가 매처의 첫 번째 후보가 되어야 매칭 실패 시 기본 언어로 떨어진다.
	tags := []language.Tag{fallback}
	others := make([]language.Tag, 0, len(catalogs))
	for tag := range catalogs {
		if tag != fallback {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	tags = append(tags, others...)

	return &Translator{
		fallback: fallback,
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		catalogs: catalogs,
	}, nil
}

// Match: 요청된 언어 코드에 가장 가까운 지원 언어를 반환한다.
func (t *Translator) Match(locale string) language.Tag {
	if t == nil {
		return language.English
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return t.fallback
	}
	_, index, confidence := t.matcher.Match(language.Make(locale))
	if confidence == language.No {
		return t.fallback
	}
	return t.tags[index]
}

// Supported: 지원하는 언어 코드 목록
func (t *Translator) Supported() []string {
	out := make([]string, 0, len(t.tags))
	for _, tag := range t.tags {
		out = append(out, tag.String())
	}
	return out
}

// Translate: 원문을 locale에 맞게 번역하고 자리표시자를 치환한다.
func (t *Translator) Translate(locale, source string, params ...Param) string {
	text := source
	if t != nil {
		if catalog, ok := t.catalogs[t.Match(locale)]; ok {
			if translated := catalog[Context][source]; translated != "" {
				text = translated
			}
		}
	}

	for _, param := range params {
		text = strings.ReplaceAll(text, "{"+param.Key+"}", fmt.Sprint(param.Value))
	}
	return text
}
