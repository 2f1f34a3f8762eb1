package sources

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/poiesic/resourcedir/dictionary"
)

// Category names one resource category and the ordered list of places its
// listing text can be fetched from. Sources may be http(s) URLs or local
// file paths; earlier entries are preferred.
type Category struct {
	Name    string   `toml:"name"`
	Sources []string `toml:"sources"`
}

// Config is the full source configuration, loadable from a TOML file.
type Config struct {
	Categories []Category `toml:"categories"`
}

// DefaultConfig returns the built-in three-category configuration with a
// remote source and a local fallback for each.
func DefaultConfig() *Config {
	return &Config{
		Categories: []Category{
			{
				Name: dictionary.CategoryHealthcare,
				Sources: []string{
					"https://data.poiesic.org/resourcedir/healthcare.txt",
					"resources/healthcare.txt",
				},
			},
			{
				Name: dictionary.CategoryEducation,
				Sources: []string{
					"https://data.poiesic.org/resourcedir/education.txt",
					"resources/education.txt",
				},
			},
			{
				Name: dictionary.CategoryResettlement,
				Sources: []string{
					"https://data.poiesic.org/resourcedir/resettlement.txt",
					"resources/resettlement.txt",
				},
			},
		},
	}
}

// LoadConfig reads and validates a TOML source configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that at least one category exists and every category has
// a unique name and at least one source.
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return ErrNoCategories
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return ErrUnnamedCategory
		}
		if seen[cat.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Sources) == 0 {
			return fmt.Errorf("%w: %q", ErrNoSources, cat.Name)
		}
	}
	return nil
}

// Category looks up a category by name.
func (c *Config) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Names returns category names in configuration order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}
