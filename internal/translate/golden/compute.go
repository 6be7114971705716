//go:build golden

package golden

import (
	"context"

	compute "cloud.google.com/go/compute/apiv1"
)

// computeClientShape anchors the EC2->Compute Engine catalog entry's
// target hint regex in the real client constructor, grounded in
// internal/providers/gcp/sdk_provider.go's compute.NewInstancesRESTClient
// usage.
func computeClientShape(ctx context.Context) (*compute.InstancesClient, error) {
	return compute.NewInstancesRESTClient(ctx)
}
