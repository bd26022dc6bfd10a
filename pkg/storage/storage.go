// Package storage persists cassettes as files in the cassette directory.
//
// A cassette is the ordered list of recordings made under one name. The json
// and yaml formats differ only in their codec; both rewrite the whole file
// on every Store using a temp file and an atomic rename.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/getmockd/vcr/pkg/recording"
)

// Built-in storage names.
const (
	NameJSON = "json"
	NameYAML = "yaml"
)

// Common errors for cassette storage.
var (
	ErrEmptyCassetteName = errors.New("cassette name cannot be empty")
	ErrInvalidCassette   = errors.New("invalid cassette file")
)

// Storage is an open cassette.
type Storage interface {
	// Path returns the cassette file location.
	Path() string

	// Recordings returns the stored recordings in recording order.
	Recordings() []recording.Recording

	// Store appends rec and persists the cassette.
	Store(rec recording.Recording) error
}

// Factory opens the cassette named cassette inside dir.
type Factory func(dir, cassette string) (Storage, error)

// codec serializes a whole cassette.
type codec struct {
	ext       string
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var jsonCodec = codec{
	ext: ".json",
	marshal: func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	},
	unmarshal: json.Unmarshal,
}

var yamlCodec = codec{
	ext:       ".yaml",
	marshal:   yaml.Marshal,
	unmarshal: yaml.Unmarshal,
}

// OpenJSON opens a JSON cassette.
func OpenJSON(dir, cassette string) (Storage, error) {
	s, err := open(jsonCodec, dir, cassette)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// OpenYAML opens a YAML cassette.
func OpenYAML(dir, cassette string) (Storage, error) {
	s, err := open(yamlCodec, dir, cassette)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// fileStorage keeps the cassette in memory and mirrors it to disk. Hooks
// call into it from every goroutine issuing requests, so mu guards
// recordings and serialises writes to the file.
type fileStorage struct {
	codec codec
	path  string

	mu         sync.RWMutex
	recordings []recording.Recording
}

func open(c codec, dir, cassette string) (*fileStorage, error) {
	if cassette == "" {
		return nil, ErrEmptyCassetteName
	}
	if filepath.Ext(cassette) == "" {
		cassette += c.ext
	}

	s := &fileStorage{
		codec: c,
		path:  filepath.Join(dir, cassette),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cassette: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var recs []recording.Recording
	if err := s.codec.unmarshal(data, &recs); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidCassette, s.path, err)
	}
	s.recordings = recs
	return nil
}

func (s *fileStorage) Path() string {
	return s.path
}

func (s *fileStorage) Recordings() []recording.Recording {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.recordings)
}

func (s *fileStorage) Store(rec recording.Recording) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := append(slices.Clone(s.recordings), rec)
	data, err := s.codec.marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal cassette: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}

	s.recordings = recs
	return nil
}

// writeFileAtomic replaces path with data through a uniquely named temp file
// in the same directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, 0644)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
