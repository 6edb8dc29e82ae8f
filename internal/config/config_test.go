package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))
}

func TestLoadPreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "tidyup.yml", `categories:
  Documents: [".pdf", ".txt"]
  Images: [".jpg"]
  Music: [".mp3"]
`)

	cfg, err := Load(fs, "tidyup.yml")
	require.NoError(t, err, "Config loading should not error")

	require.Len(t, cfg.Categories, 3, "Should have exactly 3 categories")
	assert.Equal(t, "Documents", cfg.Categories[0].Name)
	assert.Equal(t, "Images", cfg.Categories[1].Name)
	assert.Equal(t, "Music", cfg.Categories[2].Name)
	assert.Equal(t, []string{".pdf", ".txt"}, cfg.Categories[0].Extensions)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "missing.yml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, cfg)
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "categories: [broken\n"},
		{"categories is a sequence", "categories:\n  - Documents\n"},
		{"extensions not a list", "categories:\n  Documents: 5\n"},
		{"no categories", "fallback: Misc\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			writeConfig(t, fs, "tidyup.yml", tc.content)

			_, err := Load(fs, "tidyup.yml")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestValidateDuplicateCategory(t *testing.T) {
	t.Parallel()

	cfg := &Config{Categories: CategoryList{
		{Name: "Documents", Extensions: []string{".pdf"}},
		{Name: "Documents", Extensions: []string{".txt"}},
	}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFallbackName(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "tidyup.yml", `fallback: Misc
categories:
  Documents: [".pdf"]
`)

	cfg, err := Load(fs, "tidyup.yml")
	require.NoError(t, err)
	assert.Equal(t, "Misc", cfg.FallbackName())

	assert.Equal(t, DefaultFallback, (&Config{}).FallbackName())
}

func TestExtensionSyntaxNotValidated(t *testing.T) {
	t.Parallel()

	// A value without a leading dot is accepted literally; it will
	// just never match a real file suffix.
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "tidyup.yml", `categories:
  Documents: ["pdf", ""]
`)

	cfg, err := Load(fs, "tidyup.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"pdf", ""}, cfg.Categories[0].Extensions)
}
