package models

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed seed/*.json
var seedFS embed.FS

// SeedSource serves the fixtures compiled into the binary.
type SeedSource struct {
	fs embed.FS
}

func NewSeedSource() *SeedSource {
	return &SeedSource{fs: seedFS}
}

// Load decodes the embedded users, categories and products files.
func (s *SeedSource) Load(_ context.Context) (Fixtures, error) {
	var f Fixtures
	if err := s.decode("seed/users.json", &f.Users); err != nil {
		return Fixtures{}, err
	}
	if err := s.decode("seed/categories.json", &f.Categories); err != nil {
		return Fixtures{}, err
	}
	if err := s.decode("seed/products.json", &f.Products); err != nil {
		return Fixtures{}, err
	}
	return f, nil
}

func (s *SeedSource) decode(name string, dst any) error {
	data, err := s.fs.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
