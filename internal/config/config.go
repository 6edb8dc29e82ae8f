package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Error kinds surfaced before any file is touched.
var (
	ErrNotFound  = errors.New("config file not found")
	ErrMalformed = errors.New("config file malformed")
)

// DefaultFallback is the catch-all category name used when the config
// does not override it.
const DefaultFallback = "Others"

// Category is one named bucket and the extensions that map into it.
type Category struct {
	Name       string
	Extensions []string
}

// CategoryList preserves the declaration order of the YAML mapping,
// which decoding into a Go map would lose. Order is significant: the
// first category listing an extension wins.
type CategoryList []Category

type Config struct {
	Fallback   string       `yaml:"fallback,omitempty"`
	Categories CategoryList `yaml:"categories"`
}

// Load reads and parses the category config at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parse(data)
}

func parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks the loaded mapping shape. Extension syntax is
// deliberately not validated: a value without a leading dot is
// accepted and will simply never match a real file suffix.
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: config must declare at least one category", ErrMalformed)
	}

	seen := make(map[string]struct{}, len(c.Categories))
	for _, category := range c.Categories {
		if category.Name == "" {
			return fmt.Errorf("%w: category name cannot be empty", ErrMalformed)
		}
		if _, dup := seen[category.Name]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrMalformed, category.Name)
		}
		seen[category.Name] = struct{}{}
	}

	return nil
}

// FallbackName returns the catch-all category name.
func (c *Config) FallbackName() string {
	if c.Fallback == "" {
		return DefaultFallback
	}
	return c.Fallback
}

// UnmarshalYAML decodes a mapping of category name to extension list,
// keeping declaration order.
func (l *CategoryList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: categories must be a mapping of name to extension list", ErrMalformed)
	}

	categories := make([]Category, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		var extensions []string
		if err := valueNode.Decode(&extensions); err != nil {
			return fmt.Errorf("%w: category %q: %v", ErrMalformed, keyNode.Value, err)
		}
		categories = append(categories, Category{Name: keyNode.Value, Extensions: extensions})
	}

	*l = categories
	return nil
}

// MarshalYAML emits the ordered mapping form, so saved configs round
// trip in declaration order.
func (l CategoryList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, category := range l {
		var key, value yaml.Node
		if err := key.Encode(category.Name); err != nil {
			return nil, fmt.Errorf("failed to encode category name %q: %w", category.Name, err)
		}
		if err := value.Encode(category.Extensions); err != nil {
			return nil, fmt.Errorf("failed to encode extensions for %q: %w", category.Name, err)
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}
