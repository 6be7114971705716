package llm

import (
	"context"
	"testing"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiProvider_EmptyAPIKeyLeavesClientNil(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), "", "gemini-2.5-flash", catalog.New(), 90*time.Second)
	require.NoError(t, err)
	assert.Nil(t, p.client)
}

func TestRefine_NoCredentialReturnsIdentityAndNotOK(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), "", "gemini-2.5-flash", catalog.New(), 90*time.Second)
	require.NoError(t, err)

	out, ok := p.Refine(context.Background(), "s3_client = boto3.client('s3')", models.AWSS3, models.ProviderGCP, false)

	assert.False(t, ok)
	assert.Equal(t, "s3_client = boto3.client('s3')", out)
}

func TestStripMarkdownFences_RemovesFenceDelimitersAndNarrative(t *testing.T) {
	raw := "Here is the transformed code:\n```python\nstorage_client = storage.Client()\n```\n"
	out := stripMarkdownFences(raw)
	assert.Equal(t, "storage_client = storage.Client()", out)
}

func TestStripMarkdownFences_NoFenceReturnsTrimmedInput(t *testing.T) {
	raw := "  storage_client = storage.Client()  \n"
	out := stripMarkdownFences(raw)
	assert.Equal(t, "storage_client = storage.Client()", out)
}

func TestExtractText_NilResponseIsEmpty(t *testing.T) {
	assert.Equal(t, "", extractText(nil))
}
