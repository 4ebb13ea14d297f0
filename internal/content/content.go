// Package content holds the derived-field helpers shared by the content
// repositories: URL slugs and blog read times.
package content

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// Slugify derives a URL-safe slug from a title or name.
func Slugify(title string) string {
	return slug.Make(title)
}

// SlugWithSuffix returns the slug for title with a numeric collision
// suffix. attempt 0 yields the bare slug, attempt 1 yields "<slug>-2", and
// so on, matching how the storage layer retries on a unique violation.
func SlugWithSuffix(title string, attempt int) string {
	s := Slugify(title)
	if attempt <= 0 {
		return s
	}
	return fmt.Sprintf("%s-%d", s, attempt+1)
}

// ReadTime estimates reading time in minutes at 200 words per minute,
// rounded up. Empty content reads in zero minutes.
func ReadTime(text string) int {
	words := len(strings.Fields(text))
	return (words + 199) / 200
}
