// Package csharp implements the C# source-language transformer: simple
// pattern replacement for the common cases, matching Java's role in the
// pipeline (§4.7: "no LLM refinement is required for the common cases").
// The original Python source has no C# transformer to port from — this
// package follows the same using-directive / constructor substitution
// shape as package java, adapted to C# syntax.
package csharp

import (
	"regexp"

	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/pkg/models"
)

// Transformer applies C#'s simplified pattern-based rewrite rules.
type Transformer struct{}

// New builds a C# Transformer.
func New() *Transformer { return &Transformer{} }

// Transform applies the rewrite rules registered for recipe.ServiceTag.
func (t *Transformer) Transform(sourceText string, recipe lang.TransformationRecipe) (string, lang.VariableRenameMap) {
	handler, ok := csharpHandlers[recipe.ServiceTag]
	if !ok {
		return sourceText, lang.VariableRenameMap{}
	}
	return handler(sourceText), lang.VariableRenameMap{}
}

var csharpHandlers = map[models.ServiceTag]func(string) string{
	models.AzureBlobStorage: migrateBlobToGCS,
	models.AzureCosmosDB:    migrateCosmosToFirestore,
	models.AzureServiceBus:  migrateServiceBusToPubSub,
}

func migrateBlobToGCS(code string) string {
	code = regexp.MustCompile(`using\s+Azure\.Storage\.Blobs\s*;`).ReplaceAllString(code, "using Google.Cloud.Storage.V1;")
	code = regexp.MustCompile(`BlobServiceClient\s+(\w+)\s*=\s*new\s+BlobServiceClient\s*\([^)]*\)\s*;`).
		ReplaceAllString(code, "StorageClient $1 = StorageClient.Create();")
	code = regexp.MustCompile(`(\w+)\.GetBlobContainerClient\s*\(\s*([^)]+)\)\s*\.\s*UploadBlobAsync\s*\(\s*([^,]+),\s*([^)]+)\)`).
		ReplaceAllString(code, "$1.UploadObjectAsync($2, $3, $4)")
	return code
}

func migrateCosmosToFirestore(code string) string {
	code = regexp.MustCompile(`using\s+Microsoft\.Azure\.Cosmos\s*;`).ReplaceAllString(code, "using Google.Cloud.Firestore;")
	code = regexp.MustCompile(`CosmosClient\s+(\w+)\s*=\s*new\s+CosmosClient\s*\([^)]*\)\s*;`).
		ReplaceAllString(code, "FirestoreDb $1 = FirestoreDb.Create(projectId);")
	return code
}

func migrateServiceBusToPubSub(code string) string {
	code = regexp.MustCompile(`using\s+Azure\.Messaging\.ServiceBus\s*;`).ReplaceAllString(code, "using Google.Cloud.PubSub.V1;")
	code = regexp.MustCompile(`ServiceBusClient\s+(\w+)\s*=\s*new\s+ServiceBusClient\s*\([^)]*\)\s*;`).
		ReplaceAllString(code, "PublisherServiceApiClient $1 = PublisherServiceApiClient.Create();")
	return code
}
