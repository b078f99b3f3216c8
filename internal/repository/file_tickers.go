// Package repository provides the watchlist persistence backends. Both
// implement the same whole-list contract: Read returns the full list and
// Overwrite replaces it entirely.
package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// tickerFile is the on-disk YAML shape.
type tickerFile struct {
	Tickers []string `yaml:"tickers"`
}

// FileTickerRepository stores the watchlist in a YAML file. A missing file
// reads as an empty list.
type FileTickerRepository struct {
	path string
}

func NewFileTickerRepository(path string) *FileTickerRepository {
	return &FileTickerRepository{path: path}
}

func (r *FileTickerRepository) Read(ctx context.Context) ([]string, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tickers file: %w", err)
	}

	var f tickerFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse tickers file: %w", err)
	}
	return f.Tickers, nil
}

func (r *FileTickerRepository) Overwrite(ctx context.Context, tickers []string) error {
	b, err := yaml.Marshal(tickerFile{Tickers: tickers})
	if err != nil {
		return fmt.Errorf("marshal tickers: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create tickers dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		return fmt.Errorf("write tickers file: %w", err)
	}
	return nil
}
