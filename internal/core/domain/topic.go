package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Category groups topics for the filter tabs
type Category string

const (
	CategoryStructural Category = "structural"
	CategoryExterior   Category = "exterior"
	CategoryInterior   Category = "interior"
)

// FilterAll is the sentinel filter that selects every topic
const FilterAll = "all"

// Categories returns the fixed category set in tab order
func Categories() []Category {
	return []Category{CategoryStructural, CategoryExterior, CategoryInterior}
}

// Filters returns every accepted filter value, "all" first
func Filters() []string {
	filters := []string{FilterAll}
	for _, c := range Categories() {
		filters = append(filters, string(c))
	}
	return filters
}

// IsCategory reports whether s names one of the fixed categories
func IsCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Topic is a single entry of the construction catalog
type Topic struct {
	Name        string   `yaml:"name" json:"name"`
	Icon        string   `yaml:"icon" json:"icon"`
	Description string   `yaml:"description" json:"description"`
	Category    Category `yaml:"category" json:"category"`
	Link        string   `yaml:"link" json:"link"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug returns the URL segment of the topic
// "Living Room" -> "living-room"
func (t Topic) Slug() string {
	return GenerateSlug(t.Name)
}

// GenerateSlug lower-cases a name and joins its words with hyphens
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SlugFromLink extracts the slug from a topic link
// "sections/living-room/index.html" -> "living-room"
func SlugFromLink(link string) string {
	parts := strings.Split(strings.Trim(link, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Matches reports whether the lower-cased query is a substring of any of the given fields
func (t Topic) Matches(query string, fields ...Field) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(t.field(f)), query) {
			return true
		}
	}
	return false
}

// Field selects a searchable attribute of a topic
type Field int

const (
	FieldName Field = iota
	FieldDescription
	FieldCategory
)

func (t Topic) field(f Field) string {
	switch f {
	case FieldName:
		return t.Name
	case FieldDescription:
		return t.Description
	case FieldCategory:
		return string(t.Category)
	default:
		return ""
	}
}

// Validate checks that a topic carries every attribute the catalog relies on
func (t Topic) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("topic name cannot be empty")
	}
	if !IsCategory(string(t.Category)) {
		return fmt.Errorf("topic %q has unknown category %q", t.Name, t.Category)
	}
	if SlugFromLink(t.Link) != t.Slug() {
		return fmt.Errorf("topic %q link %q does not match slug %q", t.Name, t.Link, t.Slug())
	}
	return nil
}
