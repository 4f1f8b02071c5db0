// Package categories holds the fixed set of document categories. The set
// ships embedded in the binary so server and client agree without a config
// file on disk.
package categories

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/categories.yaml
var configFiles embed.FS

// Category is one entry of the enumerated set.
type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type registryFile struct {
	Default    string     `yaml:"default"`
	Categories []Category `yaml:"categories"`
}

// Registry answers which category names are valid and what the default is.
type Registry struct {
	defaultName string
	categories  []Category
	byName      map[string]Category
}

// NewRegistry loads the embedded category set.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/categories.yaml")
	if err != nil {
		return nil, fmt.Errorf("read categories config: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal categories config: %w", err)
	}
	if file.Default == "" {
		return nil, fmt.Errorf("categories config missing default")
	}

	byName := make(map[string]Category, len(file.Categories))
	for _, c := range file.Categories {
		byName[c.Name] = c
	}
	if _, ok := byName[file.Default]; !ok {
		return nil, fmt.Errorf("default category %q not in category list", file.Default)
	}

	return &Registry{
		defaultName: file.Default,
		categories:  file.Categories,
		byName:      byName,
	}, nil
}

// Default returns the category assigned when a document has none.
func (r *Registry) Default() string {
	return r.defaultName
}

// Valid reports whether name is one of the enumerated categories.
func (r *Registry) Valid(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// List returns all categories in the order defined in the config.
func (r *Registry) List() []Category {
	return r.categories
}
