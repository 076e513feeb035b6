package kb

import (
	"strings"
	"time"
)

// Article is a knowledge base entry. Articles are read-only at runtime and
// loaded by the seeder, so plain exported fields are enough.
type Article struct {
	ID        uint
	Title     string
	Category  string
	Content   string
	Keywords  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Matches reports whether the article is relevant to a free-text query. The
// match is case-insensitive over title, category, content and keywords. An
// empty query matches everything.
func (a *Article) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(a.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Category), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Content), query) {
		return true
	}
	for _, keyword := range a.Keywords {
		if strings.Contains(strings.ToLower(keyword), query) {
			return true
		}
	}
	return false
}
