package helper

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s]+`)
	slugCollapse = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe identifier from a title: lower-case, strip
// everything that is neither a word character nor whitespace, then
// collapse whitespace runs into single hyphens. Uniqueness is not
// guaranteed here; callers must enforce it against the store.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return slugCollapse.ReplaceAllString(s, "-")
}
