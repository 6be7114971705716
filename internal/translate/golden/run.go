//go:build golden

package golden

import (
	"context"

	run "cloud.google.com/go/run/apiv2"
)

// servicesClientShape anchors the Fargate/Container Instances/App
// Service->Cloud Run catalog entries' target hint regex in the real Cloud
// Run services client constructor.
func servicesClientShape(ctx context.Context) (*run.ServicesClient, error) {
	return run.NewServicesClient(ctx)
}
