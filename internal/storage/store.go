package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Storer is the read side of an asset collection.
type Storer[T ValidatingSpec] interface {
	Get(string) T
	GetAll() map[string]T
}

type decodeFunc func([]byte, any) error

var decoders = map[string]decodeFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
}

// FileStore keeps every asset found below path in memory. Files with other
// extensions are skipped.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[string]T

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{path: path}

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	s.records = records

	slog.Debug("loaded assets", "path", path, "count", len(records))

	return s, nil
}

func (s *FileStore[T]) load() (map[string]T, error) {
	records := map[string]T{}

	err := filepath.WalkDir(s.path, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		decode, ok := decoders[filepath.Ext(path)]
		if !ok {
			return nil
		}

		name := filepath.Base(path)
		asset, err := readAsset[T](path, decode)
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}
		if err := asset.Validate(); err != nil {
			return fmt.Errorf("validating %s: %w", name, err)
		}

		if _, dup := records[asset.Id()]; dup {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}
		records[asset.Id()] = asset.Spec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func readAsset[T ValidatingSpec](path string, decode decodeFunc) (*Asset[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	if err := decode(data, asset); err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}
	return asset, nil
}

// Get returns the zero value for unknown ids.
func (s *FileStore[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[id]
}

// GetAll returns a copy of every record keyed by id.
func (s *FileStore[T]) GetAll() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[string]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}
