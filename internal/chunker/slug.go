// ABOUTME: Slug and label helpers for chunk id and line rendering
// ABOUTME: Slugs are deterministic and collision-free within one build
package chunker

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases text and collapses runs of non-alphanumerics into hyphens
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Labelize turns a snake_case field key into a display label ("ai_tools" -> "Ai Tools")
func Labelize(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// uniqueID returns id, or id with a numeric suffix if it was already issued.
// Duplicate slugs would otherwise silently overwrite each other on upsert.
func uniqueID(seen map[string]int, id string) string {
	seen[id]++
	if seen[id] == 1 {
		return id
	}
	return fmt.Sprintf("%s-%d", id, seen[id])
}
