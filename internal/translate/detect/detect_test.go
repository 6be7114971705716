package detect

import (
	"testing"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePython = `
import boto3

s3_client = boto3.client('s3')

def handler(event, context):
    s3_client.upload_file('/tmp/data.csv', Bucket='my-bucket', Key='data.csv')
    return {'statusCode': 200}
`

func newDetector() *Detector {
	return New(catalog.New())
}

func TestDetectServices_FindsS3Usage(t *testing.T) {
	d := newDetector()
	found := d.DetectServices(samplePython, models.ProviderAWS)

	regions, ok := found[models.AWSS3]
	require.True(t, ok, "expected S3 usage to be detected")
	assert.NotEmpty(t, regions)
	for i := 1; i < len(regions); i++ {
		assert.LessOrEqual(t, regions[i-1].Start, regions[i].Start)
	}
}

func TestDetectServices_NoMatchesForUnrelatedProvider(t *testing.T) {
	d := newDetector()
	found := d.DetectServices(samplePython, models.ProviderAzure)
	assert.Empty(t, found)
}

func TestDetectServices_Deterministic(t *testing.T) {
	d := newDetector()
	first := d.DetectServices(samplePython, models.ProviderAWS)
	second := d.DetectServices(samplePython, models.ProviderAWS)
	assert.Equal(t, first, second)
}

func TestDetectAll_CombinesBothProviders(t *testing.T) {
	d := newDetector()
	mixed := samplePython + "\nblob_client.upload_blob(data)\n"

	all := d.DetectAll(mixed)
	_, hasS3 := all[models.AWSS3]
	_, hasBlob := all[models.AzureBlobStorage]
	assert.True(t, hasS3)
	assert.True(t, hasBlob)
}

func TestPrimaryService_PicksHighestMatchCount(t *testing.T) {
	d := newDetector()
	text := `
s3_client = boto3.client('s3')
s3_client.put_object(Bucket='b', Key='k')
s3_client.get_object(Bucket='b', Key='k')
s3_client.list_objects(Bucket='b')
sns_client = boto3.client('sns')
sns_client.publish(TopicArn='arn:aws:sns:us-east-1:1:t')
`
	tag, ok := d.PrimaryService(text, models.ProviderAWS)
	require.True(t, ok)
	assert.Equal(t, models.AWSS3, tag)
}

func TestPrimaryService_NoMatchesReturnsFalse(t *testing.T) {
	d := newDetector()
	_, ok := d.PrimaryService("print('hello world')", models.ProviderAWS)
	assert.False(t, ok)
}
