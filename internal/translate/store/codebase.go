// Package store implements the Codebase and Plan stores (§6 external
// interfaces): JSON-file-backed save/load keyed by aggregate id, one file
// per record under a configured root directory, grounded on driftmgr's
// os.ReadFile/os.WriteFile persistence in internal/infrastructure/config.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/translate"
	"github.com/catherinevee/gcpmigrate/pkg/models"
)

// Codebase is the aggregate describing one ingested source tree (§4: id,
// root path, source language, ordered file paths, dependency map,
// creation timestamp, free-form metadata). The set of file paths is fixed
// for the aggregate's lifetime; nothing in this package mutates Files
// after Load returns it.
type Codebase struct {
	ID           string            `json:"id"`
	Path         string            `json:"path"`
	Language     models.Language   `json:"language"`
	Files        []string          `json:"files"`
	Dependencies map[string]string `json:"dependencies"`
	CreatedAt    time.Time         `json:"created_at"`
	Metadata     map[string]string `json:"metadata"`
}

// CodebaseStore persists Codebase aggregates as one JSON file per id under
// dir. Concurrent saves to distinct ids are safe; the executor's
// sequential loop makes last-writer-wins sufficient for a shared id (§5).
type CodebaseStore struct {
	dir string
}

// NewCodebaseStore builds a store rooted at dir, creating it if absent.
func NewCodebaseStore(dir string) (*CodebaseStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create codebase store dir: %w", err)
	}
	return &CodebaseStore{dir: dir}, nil
}

func (s *CodebaseStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes codebase to disk, overwriting any prior record for its id.
func (s *CodebaseStore) Save(c Codebase) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal codebase %s: %w", c.ID, err)
	}
	if err := os.WriteFile(s.path(c.ID), data, 0o600); err != nil {
		return fmt.Errorf("write codebase %s: %w", c.ID, err)
	}
	return nil
}

// Load reads the codebase record for id. Unknown fields in the stored
// JSON are ignored by encoding/json's default decoding behaviour.
func (s *CodebaseStore) Load(id string) (Codebase, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Codebase{}, translate.ErrCodebaseNotFound
		}
		return Codebase{}, fmt.Errorf("read codebase %s: %w", id, err)
	}
	var c Codebase
	if err := json.Unmarshal(data, &c); err != nil {
		return Codebase{}, fmt.Errorf("unmarshal codebase %s: %w", id, err)
	}
	return c, nil
}
