package store

import (
	"errors"
	"testing"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/translate"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodebaseStore_SaveThenLoadRoundTripsAllFields(t *testing.T) {
	s, err := NewCodebaseStore(t.TempDir())
	require.NoError(t, err)

	c := Codebase{
		ID:           "codebase-1",
		Path:         "/repo/app",
		Language:     models.LanguagePython,
		Files:        []string{"a.py", "pkg/b.py"},
		Dependencies: map[string]string{"boto3": "1.34.0"},
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Metadata:     map[string]string{"owner": "platform-team"},
	}

	require.NoError(t, s.Save(c))

	loaded, err := s.Load("codebase-1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, loaded.ID)
	assert.Equal(t, c.Path, loaded.Path)
	assert.Equal(t, c.Language, loaded.Language)
	assert.Equal(t, c.Files, loaded.Files)
	assert.Equal(t, c.Dependencies, loaded.Dependencies)
	assert.True(t, c.CreatedAt.Equal(loaded.CreatedAt))
	assert.Equal(t, c.Metadata, loaded.Metadata)
}

func TestCodebaseStore_LoadUnknownIDReturnsNotFound(t *testing.T) {
	s, err := NewCodebaseStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load("missing")
	assert.True(t, errors.Is(err, translate.ErrCodebaseNotFound))
}

func TestCodebaseStore_SaveOverwritesPriorRecordForSameID(t *testing.T) {
	s, err := NewCodebaseStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(Codebase{ID: "x", Path: "/one"}))
	require.NoError(t, s.Save(Codebase{ID: "x", Path: "/two"}))

	loaded, err := s.Load("x")
	require.NoError(t, err)
	assert.Equal(t, "/two", loaded.Path)
}
