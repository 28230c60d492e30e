// Package content serves the static lesson catalog. Lessons are curated
// editorial material shipped with the binary, keyed by age group and level.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var lessonsYAML []byte

// Lesson is a single unit of lesson material.
type Lesson struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Content     string `json:"content" yaml:"content"`
}

// Catalog holds the lesson material for every age group and level.
type Catalog struct {
	lessons map[string]map[int][]Lesson
}

// NewCatalog parses the embedded lesson data.
func NewCatalog() (*Catalog, error) {
	return newCatalogFromYAML(lessonsYAML)
}

func newCatalogFromYAML(data []byte) (*Catalog, error) {
	var lessons map[string]map[int][]Lesson
	if err := yaml.Unmarshal(data, &lessons); err != nil {
		return nil, fmt.Errorf("failed to parse lesson catalog: %w", err)
	}
	return &Catalog{lessons: lessons}, nil
}

// Lookup returns the lessons for the given age group and level. Unknown
// combinations yield an empty list rather than an error.
func (c *Catalog) Lookup(ageGroup string, level int) []Lesson {
	lessons := c.lessons[ageGroup][level]
	if lessons == nil {
		return []Lesson{}
	}
	return lessons
}
