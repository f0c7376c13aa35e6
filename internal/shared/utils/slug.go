package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRuns = regexp.MustCompile(`[^a-z0-9]+`)
	slugValid       = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slugify derives a URL slug from a display name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. "Acme Batteries!" becomes "acme-batteries".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugInvalidRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug reports whether s is a well-formed slug: non-empty, lowercase
// alphanumeric segments separated by single hyphens.
func IsValidSlug(s string) bool {
	return slugValid.MatchString(s)
}
