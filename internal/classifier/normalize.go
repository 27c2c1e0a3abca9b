// Package classifier implements school cluster prediction: a learned
// model path with a deterministic keyword fallback.
package classifier

import (
	"regexp"
	"strings"
)

var (
	nonWordChars  = regexp.MustCompile(`[^\w\s.,-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// abbreviations are applied in order after character cleanup. The order is
// load-bearing: "school" fires before "highschool", so the final rule only
// matters when the first one already collapsed "high school". The training
// corpus was cleaned with this exact chain, so inference must match it.
var abbreviations = [...][2]string{
	{"high school", "highschool"},
	{"national", "nat"},
	{"school", "sch"},
	{"highschool", "highsch"},
}

// Normalize canonicalizes free-text school fields the same way the
// training pipeline did. Total: empty input yields empty output, never an
// error.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = nonWordChars.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")

	for _, sub := range abbreviations {
		text = strings.ReplaceAll(text, sub[0], sub[1])
	}

	return strings.TrimSpace(text)
}
