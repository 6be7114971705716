package csharp

import (
	"testing"

	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestTransform_BlobClientRewritten(t *testing.T) {
	tr := New()
	code := "using Azure.Storage.Blobs;\n" +
		"BlobServiceClient client = new BlobServiceClient(connectionString);\n"

	out, renames := tr.Transform(code, lang.TransformationRecipe{ServiceTag: models.AzureBlobStorage})

	assert.Contains(t, out, "using Google.Cloud.Storage.V1;")
	assert.Contains(t, out, "StorageClient client = StorageClient.Create();")
	assert.Empty(t, renames)
}

func TestTransform_UnknownServiceIsIdentity(t *testing.T) {
	tr := New()
	code := "class Foo {}"
	out, _ := tr.Transform(code, lang.TransformationRecipe{ServiceTag: models.AzureVMs})
	assert.Equal(t, code, out)
}
