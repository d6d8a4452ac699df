package messages

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type fileCatalog struct {
	Base     string  `toml:"base"`
	Messages Catalog `toml:"messages"`
}

// LoadFile reads a TOML catalog. Fields left out fall back to the catalog
// named by `base`, or English when base is unset.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog load failed (%s): %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML catalog document.
func Parse(data []byte) (Catalog, error) {
	var raw fileCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	base, err := ForLocale(raw.Base)
	if err != nil {
		return Catalog{}, err
	}
	cat := raw.Messages.merge(base)
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
