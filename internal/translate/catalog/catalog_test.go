package catalog

import (
	"testing"

	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CoversAllAWSServices(t *testing.T) {
	c := New()

	required := []models.ServiceTag{
		models.AWSS3, models.AWSLambda, models.AWSDynamoDB, models.AWSSQS,
		models.AWSSNS, models.AWSRDS, models.AWSEC2, models.AWSCloudWatch,
		models.AWSAPIGateway, models.AWSEKS, models.AWSFargate,
	}

	for _, tag := range required {
		m, ok := c.Get(models.ProviderAWS, tag)
		assert.Truef(t, ok, "expected AWS mapping for %s", tag)
		if ok {
			assert.Equal(t, tag, m.SourceService)
			assert.NotEmpty(t, m.ImportPatterns)
			assert.NotEmpty(t, m.APIPatterns)
			assert.NotEmpty(t, m.TargetImports)
		}
	}
}

func TestNew_CoversAllAzureServices(t *testing.T) {
	c := New()

	required := []models.ServiceTag{
		models.AzureBlobStorage, models.AzureFunctions, models.AzureCosmosDB,
		models.AzureServiceBus, models.AzureEventHubs, models.AzureSQLDatabase,
		models.AzureVMs, models.AzureMonitor, models.AzureAPIMgmt,
		models.AzureRedisCache, models.AzureAKS, models.AzureContainerIn,
		models.AzureAppService, models.AzureKeyVault, models.AzureAppInsights,
	}

	for _, tag := range required {
		m, ok := c.Get(models.ProviderAzure, tag)
		assert.Truef(t, ok, "expected Azure mapping for %s", tag)
		if ok {
			assert.Equal(t, tag, m.SourceService)
			assert.NotEmpty(t, m.APIPatterns)
		}
	}
}

func TestGet_UnknownServiceReturnsFalse(t *testing.T) {
	c := New()
	_, ok := c.Get(models.ProviderAWS, models.ServiceTag("aws_nonexistent"))
	assert.False(t, ok)
}

func TestAllForProvider_DeterministicOrder(t *testing.T) {
	c := New()

	first := c.AllForProvider(models.ProviderAWS)
	second := c.AllForProvider(models.ProviderAWS)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].SourceService, second[i].SourceService)
	}

	for i := 1; i < len(first); i++ {
		assert.Lessf(t, first[i-1].SourceService, first[i].SourceService,
			"expected AllForProvider to be sorted by service tag")
	}
}

func TestAll_ConcatenatesAWSThenAzure(t *testing.T) {
	c := New()
	all := c.All()

	aws := c.AllForProvider(models.ProviderAWS)
	azure := c.AllForProvider(models.ProviderAzure)

	require.Equal(t, len(aws)+len(azure), len(all))
	for i, m := range all[:len(aws)] {
		assert.Equal(t, models.ProviderAWS, m.SourceProvider)
		assert.Equal(t, aws[i].SourceService, m.SourceService)
	}
	for i, m := range all[len(aws):] {
		assert.Equal(t, models.ProviderAzure, m.SourceProvider)
		assert.Equal(t, azure[i].SourceService, m.SourceService)
	}
}

func TestServiceMappings_APIPatternsMatchTargetHints(t *testing.T) {
	c := New()
	s3, ok := c.Get(models.ProviderAWS, models.AWSS3)
	require.True(t, ok)

	source := `client = boto3.client('s3')\nclient.upload_file(file, Bucket='my-bucket', Key=key)`
	matched := false
	for _, p := range s3.APIPatterns {
		if p.MatchString(source) {
			matched = true
			break
		}
	}
	assert.True(t, matched, "expected at least one S3 API pattern to match boto3 usage")
}

func TestClosestGCPRegion(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		fallback string
		want     string
	}{
		{name: "known aws region", source: "us-east-1", fallback: "us-central1", want: "us-east4"},
		{name: "known azure region", source: "westeurope", fallback: "us-central1", want: "europe-west1"},
		{name: "unknown region falls back", source: "mars-central-1", fallback: "us-central1", want: "us-central1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosestGCPRegion(tt.source, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}
