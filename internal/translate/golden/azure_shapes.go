//go:build golden

// azure_shapes.go anchors the catalog's Azure source-side API-pattern
// regexes (internal/translate/catalog/azure.go) in real Azure SDK for Go
// client constructors, grounded in internal/cloud/azure/azure_comprehensive.go
// and internal/state/backend/azure.go.
package golden

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/eventhub/armeventhub"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/servicebus/armservicebus"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

func cosmosShape(subscriptionID string, cred azcore.TokenCredential) (*armcosmos.DatabaseAccountsClient, error) {
	return armcosmos.NewDatabaseAccountsClient(subscriptionID, cred, nil)
}

func aksShape(subscriptionID string, cred azcore.TokenCredential) (*armcontainerservice.ManagedClustersClient, error) {
	return armcontainerservice.NewManagedClustersClient(subscriptionID, cred, nil)
}

func keyVaultShape(subscriptionID string, cred azcore.TokenCredential) (*armkeyvault.VaultsClient, error) {
	return armkeyvault.NewVaultsClient(subscriptionID, cred, nil)
}

func serviceBusShape(subscriptionID string, cred azcore.TokenCredential) (*armservicebus.NamespacesClient, error) {
	return armservicebus.NewNamespacesClient(subscriptionID, cred, nil)
}

func eventHubShape(subscriptionID string, cred azcore.TokenCredential) (*armeventhub.NamespacesClient, error) {
	return armeventhub.NewNamespacesClient(subscriptionID, cred, nil)
}

func blobShape(serviceURL string, cred azcore.TokenCredential) (*azblob.Client, error) {
	return azblob.NewClient(serviceURL, cred, nil)
}
