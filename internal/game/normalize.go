package game

import (
	"regexp"
	"strings"
)

var (
	leadingArticle = regexp.MustCompile(`^(a|an|the)\s+`)
	disallowed     = regexp.MustCompile(`[^\p{L}\p{N}\s:&']`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// Normalize maps a free-text guess to its canonical comparable form: trimmed,
// lowercased, one leading English article removed, punctuation outside a
// small allow-list stripped, whitespace collapsed. Two answers match iff
// their normalized forms are equal.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = leadingArticle.ReplaceAllString(s, "")
	s = disallowed.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
