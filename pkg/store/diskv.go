package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is the key-value contract the repository is written against.
type Persistence interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
	// BasePath is the directory holding the data.
	BasePath() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	tempDir := filepath.Join(basePath, tempDirName)
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	// Writes land in tempDir first and are renamed into place, so readers
	// and the watcher never see a half-written tree.
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           tempDir,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath, key: cfg.TreeKey()}, nil
}

// tempDirName sits under the base path so renames stay on one filesystem.
const tempDirName = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

// Get reads around the cache; another process may have rewritten the file.
func (p *persistence) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	if !p.d.Has(key) {
		return "", false, nil
	}
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (p *persistence) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	if strings.ContainsAny(key, `/\`) || key == tempDirName {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}

// Keys are flat: one file per key directly under the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
