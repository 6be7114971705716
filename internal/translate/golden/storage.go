//go:build golden

// Package golden anchors the catalog's target-SDK hint regexes (§3 domain
// stack) in real, compiling client-construction shapes from the actual GCP
// Go SDKs, rather than hand-guessed strings. Nothing here executes; the
// build tag keeps it out of normal builds and tests.
package golden

import (
	"context"

	"cloud.google.com/go/storage"
)

// storageClientShape mirrors the GCPSDKProvider construction pattern the
// teacher uses (internal/providers/gcp/sdk_provider.go): storage.NewClient
// followed by bucket/object access is the shape the Python and Go S3
// transformers emit as their GCS replacement.
func storageClientShape(ctx context.Context) (*storage.Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	bucket := client.Bucket("example-bucket")
	_ = bucket.Object("example-key")
	return client, nil
}
