package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nonSlugChars = regexp.MustCompile("[^a-z0-9-]")
	hyphenRuns   = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateConfirmationNumber returns prefix followed by the last eight digits of
// the epoch milliseconds of now, e.g. "BNPL-00123456".
func GenerateConfirmationNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%08d", prefix, now.UnixMilli()%100000000)
}
