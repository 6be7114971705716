package store

import (
	"fmt"
	"os"
	"time"
)

// FileRepository is the disk-backed implementation of plan.FileRepository,
// the executor's sole filesystem collaborator (§5, §6). Backup names are
// deterministic: original path plus a unix timestamp, grounded on
// driftmgr's state-surgery backup convention
// (cmd/driftmgr/state_surgery.go: "%s.%d.backup").
type FileRepository struct{}

// NewFileRepository builds a FileRepository. It holds no state; every
// call reads the clock and filesystem directly.
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Read returns the full contents of path.
func (FileRepository) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Write overwrites path with text, preserving the file's existing mode if
// it already exists.
func (FileRepository) Write(path, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// CreateBackup copies path to a deterministically named sibling file and
// returns that name.
func (FileRepository) CreateBackup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s for backup: %w", path, err)
	}
	backupPath := fmt.Sprintf("%s.%d.backup", path, time.Now().Unix())
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}
