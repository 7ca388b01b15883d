package birthday

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// fileDocument is the on-disk shape: {"birthdays": [...]}.
type fileDocument struct {
	Birthdays []Birthday `json:"birthdays"`
}

// FileRepository keeps the collection in a single JSON file. It is the
// default backend for local use.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads the collection. A missing or unreadable file is treated as an
// empty collection, never an error.
func (r *FileRepository) Load(_ context.Context) ([]Birthday, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		log.Debugf("birthday file %s not readable, treating as empty: %v", r.path, err)
		return []Birthday{}, nil
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warnf("birthday file %s is malformed, treating as empty: %v", r.path, err)
		return []Birthday{}, nil
	}
	if doc.Birthdays == nil {
		return []Birthday{}, nil
	}
	return doc.Birthdays, nil
}

// Save writes the whole collection, creating parent directories as needed.
func (r *FileRepository) Save(_ context.Context, birthdays []Birthday) error {
	data, err := json.MarshalIndent(fileDocument{Birthdays: birthdays}, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal birthdays: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create data directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("could not write birthday file: %w", err)
	}
	return nil
}
