package valueobjects

import (
	"fmt"
	"strings"
)

// Category is free text chosen from a list the submission form offers. The
// server only requires it to be non-empty and reasonably sized, so new
// categories can be introduced without a schema change.
type Category string

// SuggestedCategories is the list offered by the submission form.
var SuggestedCategories = []Category{
	"Technical Issue",
	"Account Access",
	"Billing",
	"Feature Request",
	"Other",
}

const maxCategoryLength = 50

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	trimmed := strings.TrimSpace(string(c))
	return trimmed != "" && len(trimmed) <= maxCategoryLength
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q", s)
	}
	return c, nil
}
