package parser_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"studyblog/parser"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Spaced   Title  ", "spaced-title"},
		{"파이썬 학습 일지", "파이썬-학습-일지"},
		{"Next.js로 블로그 만들기!", "nextjs로-블로그-만들기"},
		{"snake_case_title", "snake-case-title"},
		{"--edge--", "edge"},
		{"!!!", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, parser.Slugify(c.title), "title: %q", c.title)
	}
}

func TestSlugifyIsStable(t *testing.T) {
	once := parser.Slugify("Redux 상태 관리 배우기")
	again := parser.Slugify("Redux 상태 관리 배우기")
	assert.Equal(t, once, again)
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "plain text", parser.StripMarkup("plain text"))
	assert.Equal(t, "bold and link", parser.StripMarkup("<b>bold</b> and <a href=\"/x\">link</a>"))
}

func TestGenerateExcerptShortContentPassesThrough(t *testing.T) {
	got := parser.GenerateExcerpt("짧은 본문입니다.")
	assert.Equal(t, "짧은 본문입니다.", got)
}

func TestGenerateExcerptFlattensNewlines(t *testing.T) {
	got := parser.GenerateExcerpt("첫 줄\n둘째 줄\r\n셋째 줄")
	assert.Equal(t, "첫 줄 둘째 줄 셋째 줄", got)
}

func TestGenerateExcerptTruncatesLongContent(t *testing.T) {
	content := strings.Repeat("가", 300)
	got := parser.GenerateExcerpt(content)

	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), parser.ExcerptMaxRunes+1)
	assert.Equal(t, strings.Repeat("가", parser.ExcerptMaxRunes)+"…", got)
}

func TestGenerateExcerptStripsMarkupBeforeTruncating(t *testing.T) {
	content := "<p>" + strings.Repeat("a", 200) + "</p>"
	got := parser.GenerateExcerpt(content)

	assert.NotContains(t, got, "<p>")
	assert.Equal(t, strings.Repeat("a", parser.ExcerptMaxRunes)+"…", got)
}
