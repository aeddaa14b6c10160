package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File is a Storage persisted as a small JSON object on disk, the terminal
// equivalent of browser local storage. Every Set/Remove rewrites the file.
type File struct {
	path   string
	values map[string]string
}

// NewFile loads the store from path, creating parent directories as needed.
// A missing file yields an empty store; a corrupt file is an error.
func NewFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.values[key] = value
	return f.save()
}

func (f *File) Remove(key string) error {
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.save()
}

func (f *File) save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	data, err := json.Marshal(f.values)
	if err != nil {
		return err
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
