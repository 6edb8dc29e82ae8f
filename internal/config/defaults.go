package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in category index used when no config file
// is given.
func Default() *Config {
	return &Config{
		Categories: CategoryList{
			{Name: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".odt", ".txt", ".md"}},
			{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp"}},
			{Name: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".ogg"}},
			{Name: "Video", Extensions: []string{".mp4", ".mkv", ".mov", ".avi"}},
			{Name: "Archives", Extensions: []string{".zip", ".tar", ".gz", ".7z", ".rar"}},
			{Name: "Spreadsheets", Extensions: []string{".xls", ".xlsx", ".ods", ".csv"}},
		},
	}
}

// DefaultYAML returns the built-in index as YAML bytes, used by the
// init command to seed a config file.
func DefaultYAML() ([]byte, error) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config: %w", err)
	}
	return data, nil
}
