// Package artifact persists per-country weather text files under a fixed
// directory convention (<country>_weather.txt) with per-key write serialization.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/common"
)

// ErrNoData is returned when no artifact exists for a given country.
var ErrNoData = errors.New("no weather data for country")

const artifactSuffix = "_weather.txt"

// Store is a keyed store of plain-text weather artifacts. Writes for the same
// country are serialized through a per-key mutex so concurrent fetches cannot
// interleave partial file contents; the write itself goes through a temp file
// and rename.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the data directory if needed and returns a Store over it.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = filepath.Join("data", "weather")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact directory: %w", err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the directory artifacts are stored under.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Path returns the artifact file path for a country.
func (s *Store) Path(country string) string {
	return filepath.Join(s.dir, common.CanonKey(country)+artifactSuffix)
}

// Write replaces the artifact for a country. Last write wins, but writes for
// the same key never race on the file contents.
func (s *Store) Write(country, text string) error {
	key := common.CanonKey(country)
	if key == "" {
		return fmt.Errorf("empty country name")
	}

	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	final := filepath.Join(s.dir, key+artifactSuffix)
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp artifact for %s: %w", country, err)
	}

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing artifact for %s: %w", country, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing artifact for %s: %w", country, err)
	}

	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing artifact for %s: %w", country, err)
	}
	return nil
}

// Read returns the artifact text for a country, or ErrNoData when absent.
func (s *Store) Read(country string) (string, error) {
	data, err := os.ReadFile(s.Path(country))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNoData, country)
		}
		return "", fmt.Errorf("reading artifact for %s: %w", country, err)
	}
	return string(data), nil
}

// List returns the canonical country keys that currently have artifacts.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing artifacts: %w", err)
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, artifactSuffix) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, artifactSuffix))
	}
	return keys, nil
}
