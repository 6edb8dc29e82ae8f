package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidyup/tidyup/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Categories: config.CategoryList{
			{Name: "Documents", Extensions: []string{".pdf", ".txt"}},
			{Name: "Images", Extensions: []string{".jpg", ".png"}},
		},
	}
}

func TestIndexClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ext  string
		want string
	}{
		{"configured document extension", ".pdf", "Documents"},
		{"configured image extension", ".jpg", "Images"},
		{"unmatched extension", ".gz", "Others"},
		{"empty suffix", "", "Others"},
		{"case sensitive", ".PDF", "Others"},
		{"no leading dot never matches", "pdf", "Others"},
	}

	index := NewIndex(testConfig())
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, index.Classify(tc.ext))
		})
	}
}

func TestIndexDuplicateExtensionFirstWins(t *testing.T) {
	t.Parallel()

	index := NewIndex(&config.Config{
		Categories: config.CategoryList{
			{Name: "Reports", Extensions: []string{".pdf"}},
			{Name: "Documents", Extensions: []string{".pdf"}},
		},
	})

	assert.Equal(t, "Reports", index.Classify(".pdf"), "declaration order breaks the tie")
}

func TestIndexEmptySuffixIsOrdinaryMember(t *testing.T) {
	t.Parallel()

	index := NewIndex(&config.Config{
		Categories: config.CategoryList{
			{Name: "Plain", Extensions: []string{""}},
		},
	})

	assert.Equal(t, "Plain", index.Classify(""), "a category listing the empty string captures extensionless files")
}

func TestIndexCustomFallback(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Fallback = "Misc"

	index := NewIndex(cfg)
	assert.Equal(t, "Misc", index.Classify(".xyz"))
}

func TestByExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ext  string
		want string
	}{
		{"dot stripped", ".jpg", "jpg"},
		{"last suffix only", ".gz", "gz"},
		{"empty suffix falls back", "", "Others"},
		{"bare dot falls back", ".", "Others"},
	}

	strategy := NewByExtension("Others")
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, strategy.Classify(tc.ext))
		})
	}
}
