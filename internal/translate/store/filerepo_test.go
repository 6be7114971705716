package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_WriteThenReadRoundTrips(t *testing.T) {
	repo := NewFileRepository()
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	require.NoError(t, repo.Write(path, "translated"))

	text, err := repo.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "translated", text)
}

func TestFileRepository_CreateBackupProducesDeterministicSuffixAndPreservesOriginal(t *testing.T) {
	repo := NewFileRepository()
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	backupPath, err := repo.CreateBackup(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(backupPath, path+"."))
	assert.True(t, strings.HasSuffix(backupPath, ".backup"))

	backupText, err := repo.Read(backupPath)
	require.NoError(t, err)
	assert.Equal(t, "original", backupText)

	originalText, err := repo.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "original", originalText)
}

func TestFileRepository_ReadMissingFileReturnsError(t *testing.T) {
	repo := NewFileRepository()
	_, err := repo.Read(filepath.Join(t.TempDir(), "missing.py"))
	assert.Error(t, err)
}
