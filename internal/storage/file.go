package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/swimlight/internal/daterange"
)

var _ DateCache = (*FileCache)(nil)

type FileCache struct {
	path     string
	bucketer daterange.Bucketer
}

func NewFileCache(path string, bucketer daterange.Bucketer) *FileCache {
	return &FileCache{path: path, bucketer: bucketer}
}

func (c *FileCache) Load(_ context.Context) ([]time.Time, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var p payload
	if err := go_json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return decode(p, c.bucketer)
}

// Save writes to a sibling temp file and renames it over the cache, so a
// reader never observes a partial list.
func (c *FileCache) Save(_ context.Context, dates []time.Time) error {
	data, err := go_json.Marshal(encode(dates, c.bucketer))
	if err != nil {
		return fmt.Errorf("encode workout dates: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}
