// Package catalog provides the assessment instrument: the built-in default
// and YAML file loading for custom instruments.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"avika/internal/model"
)

// LoadFile reads a catalog from a YAML file and validates it.
func LoadFile(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog data and validates it.
func Parse(data []byte) (*model.Catalog, error) {
	var c model.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	// Items may omit the category field; fill it from the enclosing category.
	for ci := range c.Categories {
		for ii := range c.Categories[ci].Items {
			if c.Categories[ci].Items[ii].Category == "" {
				c.Categories[ci].Items[ii].Category = c.Categories[ci].Name
			}
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Load returns the catalog at path, or the built-in default when path is
// empty.
func Load(path string) (*model.Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
