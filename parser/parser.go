package parser

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ExcerptMaxRunes is the rune budget of a post excerpt before the ellipsis.
const ExcerptMaxRunes = 150

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s가-힣-]`)
	slugHyphenRe   = regexp.MustCompile(`[\s_-]+`)
	slugTrimRe     = regexp.MustCompile(`^-+|-+$`)
	newlineFlatten = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
)

// Slugify derives the URL-safe identifier of a post from its title:
// lowercase, strip everything outside word characters / whitespace / 한글,
// collapse whitespace runs to a single hyphen, trim edge hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	s = slugTrimRe.ReplaceAllString(s, "")
	return s
}

// StripMarkup removes tag-like markup from content, keeping only text. (태그 제거)
// Content that is not parseable as markup passes through unchanged.
func StripMarkup(content string) string {
	if !strings.ContainsRune(content, '<') {
		return content
	}

	var b strings.Builder
	tz := html.NewTokenizer(strings.NewReader(content))
	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(tz.Text())
		}
	}
	return b.String()
}

// GenerateExcerpt regenerates a post excerpt from its content:
// markup stripped, newlines flattened to spaces, rune-truncated to
// ExcerptMaxRunes with a trailing ellipsis. The result never exceeds
// ExcerptMaxRunes+1 runes.
func GenerateExcerpt(content string) string {
	plain := newlineFlatten.Replace(StripMarkup(content))
	rs := []rune(plain)
	if len(rs) <= ExcerptMaxRunes {
		return plain
	}
	return strings.TrimSpace(string(rs[:ExcerptMaxRunes])) + "…"
}
