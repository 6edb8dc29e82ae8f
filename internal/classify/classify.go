// Package classify maps file extensions to category folder names.
package classify

import (
	"strings"

	"github.com/tidyup/tidyup/internal/config"
)

// Classifier decides which category folder a file extension belongs
// to. Implementations are pure: no filesystem access, no errors.
type Classifier interface {
	Classify(ext string) string
}

// Index classifies against an ordered category index. The first
// category whose extension set contains the suffix wins; everything
// else lands in the fallback.
type Index struct {
	fallback   string
	categories []category
}

type category struct {
	exts map[string]struct{}
	name string
}

// NewIndex builds an Index from a loaded config, keeping its
// declaration order.
func NewIndex(cfg *config.Config) *Index {
	categories := make([]category, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		exts := make(map[string]struct{}, len(c.Extensions))
		for _, ext := range c.Extensions {
			exts[ext] = struct{}{}
		}
		categories = append(categories, category{name: c.Name, exts: exts})
	}
	return &Index{categories: categories, fallback: cfg.FallbackName()}
}

// Classify matches ext verbatim: leading dot included, case-sensitive.
// The empty suffix is an ordinary value, so a category listing "" will
// capture extensionless files.
func (i *Index) Classify(ext string) string {
	for _, c := range i.categories {
		if _, ok := c.exts[ext]; ok {
			return c.name
		}
	}
	return i.fallback
}

// ByExtension names the folder after the raw extension itself, dot
// stripped. Extensionless files go to the fallback.
type ByExtension struct {
	fallback string
}

// NewByExtension builds the raw-extension naming strategy.
func NewByExtension(fallback string) *ByExtension {
	return &ByExtension{fallback: fallback}
}

func (b *ByExtension) Classify(ext string) string {
	trimmed := strings.TrimPrefix(ext, ".")
	if trimmed == "" {
		return b.fallback
	}
	return trimmed
}
