package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
)

type stubLLM struct {
	calls    int
	response string
	ok       bool
}

func (s *stubLLM) Refine(ctx context.Context, sourceText string, serviceTag models.ServiceTag, targetProvider models.CloudProvider, retryHint bool) (string, bool) {
	s.calls++
	if s.response == "" {
		return sourceText, s.ok
	}
	return s.response, s.ok
}

func s3Recipe() lang.TransformationRecipe {
	return lang.TransformationRecipe{
		Operation:  models.MigrateOperation(models.GCPCloudStorage),
		ServiceTag: models.AWSS3,
		Provider:   models.ProviderAWS,
		Language:   models.LanguagePython,
	}
}

func TestTranslate_PythonS3_NoLLMConfigured(t *testing.T) {
	p := New(catalog.New(), nil, 5*time.Second)
	code := "import boto3\ns3 = boto3.client('s3')\ns3.upload_file('a.txt', 'my-bucket', 'a.txt')\n"

	result := p.Translate(context.Background(), code, s3Recipe())

	assert.Contains(t, result.FinalText, "storage")
	assert.NotContains(t, result.FinalText, "boto3")
}

func TestTranslate_PythonS3_LLMNotCalledWhenResidueAlreadyClean(t *testing.T) {
	stub := &stubLLM{ok: true}
	p := New(catalog.New(), stub, 5*time.Second)
	code := "from google.cloud import storage\nstorage_client = storage.Client()\n"

	p.Translate(context.Background(), code, s3Recipe())

	assert.Equal(t, 0, stub.calls)
}

func TestTranslate_PythonS3_LLMInvokedWhenResidueRemains(t *testing.T) {
	stub := &stubLLM{ok: true, response: "from google.cloud import storage\nstorage_client = storage.Client()\n"}
	p := New(catalog.New(), stub, 5*time.Second)
	code := "import boto3\ns3_client = boto3.client('s3')\ns3_client.head_object(Bucket='b', Key='k')\n"

	result := p.Translate(context.Background(), code, s3Recipe())

	assert.GreaterOrEqual(t, stub.calls, 1)
	assert.NotContains(t, result.FinalText, "boto3")
}

func TestTranslate_EmptyPythonFileIsIdentity(t *testing.T) {
	p := New(catalog.New(), nil, 5*time.Second)
	result := p.Translate(context.Background(), "", s3Recipe())
	assert.Equal(t, "", result.FinalText)
}

func TestTranslate_GoRoutesThroughSkeletonAndLLM(t *testing.T) {
	stub := &stubLLM{ok: true}
	p := New(catalog.New(), stub, 5*time.Second)
	code := "import (\n\t\"github.com/aws/aws-sdk-go-v2/service/s3\"\n)\n"

	recipe := s3Recipe()
	recipe.Language = models.LanguageGo

	result := p.Translate(context.Background(), code, recipe)

	assert.Contains(t, result.FinalText, "cloud.google.com/go/storage")
}

func TestTranslate_JavaUsesSimplePatternReplacementWithoutLLM(t *testing.T) {
	stub := &stubLLM{ok: true}
	p := New(catalog.New(), stub, 5*time.Second)
	code := "import com.amazonaws.services.s3.AmazonS3;\nprivate AmazonS3 s3Client;\n"

	recipe := s3Recipe()
	recipe.Language = models.LanguageJava

	result := p.Translate(context.Background(), code, recipe)

	assert.Contains(t, result.FinalText, "com.google.cloud.storage.Storage")
	assert.Equal(t, 0, stub.calls)
}

func TestTranslate_UnknownLanguageIsIdentityWithWarning(t *testing.T) {
	p := New(catalog.New(), nil, 5*time.Second)
	recipe := s3Recipe()
	recipe.Language = models.Language("cobol")

	result := p.Translate(context.Background(), "PROGRAM-ID. FOO.\n", recipe)

	assert.Equal(t, "PROGRAM-ID. FOO.\n", result.FinalText)
	assert.NotEmpty(t, result.Warning)
}
