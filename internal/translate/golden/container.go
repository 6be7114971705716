//go:build golden

package golden

import (
	"context"

	container "cloud.google.com/go/container/apiv1"
)

// clusterManagerShape anchors the EKS/AKS->GKE catalog entries' target
// hint regex in the real GKE cluster-manager client constructor.
func clusterManagerShape(ctx context.Context) (*container.ClusterManagerClient, error) {
	return container.NewClusterManagerClient(ctx)
}
