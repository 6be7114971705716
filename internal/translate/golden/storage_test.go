//go:build golden

package golden

import (
	"cloud.google.com/go/storage"
	"testing"
)

// TestStorageClientShapeCompiles is never expected to run against a live
// project; it exists so the catalog's target-SDK hint regexes are checked
// against a real, compiling reference to *storage.Client rather than a
// guessed string.
func TestStorageClientShapeCompiles(t *testing.T) {
	var _ storage.Client
}
