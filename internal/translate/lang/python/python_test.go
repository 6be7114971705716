package python

import (
	"strings"
	"testing"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransformer() *Transformer {
	return New(catalog.New())
}

func s3Recipe() lang.TransformationRecipe {
	return lang.TransformationRecipe{
		Operation:  models.MigrateOperation(models.GCPCloudStorage),
		ServiceTag: models.AWSS3,
		Provider:   models.ProviderAWS,
		Language:   models.LanguagePython,
	}
}

func TestTransform_EmptyFileIsIdentity(t *testing.T) {
	tr := newTransformer()
	out, renames := tr.Transform("", s3Recipe())
	assert.Equal(t, "", out)
	assert.Empty(t, renames)
}

func TestTransform_MinimalS3Python(t *testing.T) {
	tr := newTransformer()
	source := "import boto3\n" +
		"s3 = boto3.client('s3')\n" +
		"s3.upload_file('a.txt', 'my-bucket', 'a.txt')\n"

	out, renames := tr.Transform(source, s3Recipe())

	assert.Contains(t, out, "from google.cloud import storage")
	assert.Contains(t, out, "storage.Client()")
	assert.NotContains(t, out, "boto3")
	assert.Equal(t, "storage_client", renames["s3"], "lhs 's3' carries source naming, so it is renamed")
}

func TestTransform_S3ClientRenamed(t *testing.T) {
	tr := newTransformer()
	source := "import boto3\n" +
		"s3_client = boto3.client('s3')\n" +
		"s3_client.put_object(Bucket='b', Key='k', Body=data)\n"

	out, renames := tr.Transform(source, s3Recipe())

	assert.Equal(t, "storage_client", renames["s3_client"])
	assert.Contains(t, out, "storage_client = storage.Client()")
	assert.NotContains(t, out, "s3_client")
	assert.Contains(t, out, "storage_client.bucket('b').blob('k').upload_from_string(data)")
}

func TestTransform_LambdaS3Trigger(t *testing.T) {
	tr := newTransformer()
	source := "def lambda_handler(event, context):\n" +
		"    for r in event['Records']:\n" +
		"        b = r['s3']['bucket']['name']\n" +
		"        k = r['s3']['object']['key']\n"

	recipe := lang.TransformationRecipe{
		Operation:  models.MigrateOperation(models.GCPCloudFunctions),
		ServiceTag: models.AWSLambda,
		Provider:   models.ProviderAWS,
		Language:   models.LanguagePython,
	}

	out, _ := tr.Transform(source, recipe)

	assert.Contains(t, out, "def process_gcs_file(data, context):")
	assert.NotContains(t, out, "event['Records']")
	assert.NotContains(t, out, "lambda_handler")
}

func TestTransform_AzureCosmos(t *testing.T) {
	tr := newTransformer()
	source := "client = CosmosClient(url=U, credential=K)\n" +
		"client.GetDatabase('db').GetContainer('c').create_item(body={'id': '1'})\n"

	recipe := lang.TransformationRecipe{
		Operation:  models.MigrateOperation(models.GCPFirestore),
		ServiceTag: models.AzureCosmosDB,
		Provider:   models.ProviderAzure,
		Language:   models.LanguagePython,
	}

	out, renames := tr.Transform(source, recipe)

	assert.Equal(t, "firestore_client", renames["client"])
	assert.Contains(t, out, "firestore.Client()")
	assert.Contains(t, out, "collection('c').document().set({'id': '1'})")
	assert.NotContains(t, out, "CosmosClient")
	assert.NotContains(t, out, "GetDatabase")
	assert.NotContains(t, out, "GetContainer")
}

func TestTransform_EnvVarRewrite(t *testing.T) {
	tr := newTransformer()
	source := "import os\n" +
		"key = os.getenv('AWS_ACCESS_KEY_ID')\n" +
		"region = os.getenv('AWS_DEFAULT_REGION')\n"

	out, _ := tr.Transform(source, s3Recipe())

	assert.Contains(t, out, "GOOGLE_APPLICATION_CREDENTIALS")
	assert.Contains(t, out, "GOOGLE_CLOUD_REGION")
	assert.NotContains(t, out, "AWS_ACCESS_KEY_ID")
}

func TestTransform_UnknownServiceIsIdentity(t *testing.T) {
	tr := newTransformer()
	source := "print('hello world')"
	recipe := lang.TransformationRecipe{
		ServiceTag: models.ServiceTag("aws_unknown"),
		Provider:   models.ProviderAWS,
	}

	out, renames := tr.Transform(source, recipe)

	assert.Equal(t, source, out)
	assert.Empty(t, renames)
}

func dynamoRecipe() lang.TransformationRecipe {
	return lang.TransformationRecipe{
		Operation:  models.MigrateOperation(models.GCPFirestore),
		ServiceTag: models.AWSDynamoDB,
		Provider:   models.ProviderAWS,
		Language:   models.LanguagePython,
	}
}

func TestTransform_DynamoDBApplicationCodeReplacesClientOutright(t *testing.T) {
	tr := newTransformer()
	source := "dynamodb_client = boto3.client('dynamodb')\n" +
		"dynamodb_client.put_item(TableName='t', Item=item)\n"

	out, renames := tr.Transform(source, dynamoRecipe())

	assert.Equal(t, "firestore_db", renames["dynamodb_client"])
	assert.Contains(t, out, "firestore_db = firestore.Client()")
	assert.Contains(t, out, "firestore_db.collection('t').document().set(item)")
	assert.NotContains(t, out, "dynamodb_client")
}

func TestTransform_DynamoDBMigrationScriptPreservesReadsRewritesWrites(t *testing.T) {
	tr := newTransformer()
	source := "dynamodb_resource = boto3.resource('dynamodb')\n" +
		"source_table = dynamodb_resource.Table('orders')\n" +
		"for item in source_table.scan(TableName='orders'):\n" +
		"    source_table.put_item(Item=item)\n"

	out, renames := tr.Transform(source, dynamoRecipe())

	assert.Empty(t, renames, "migration-script mode leaves the DynamoDB client assignment untouched")
	assert.Contains(t, out, "dynamodb_resource = boto3.resource('dynamodb')", "read side stays on DynamoDB")
	assert.Contains(t, out, "firestore_db = firestore.Client()")
	assert.Contains(t, out, "firestore_db.collection(FIRESTORE_COLLECTION).document().set(item)")
	assert.NotContains(t, out, ".put_item(Item=item)")
}

func TestTransform_Idempotent(t *testing.T) {
	tr := newTransformer()
	source := "s3_client = boto3.client('s3')\ns3_client.upload_file('a', 'b', 'c')\n"

	first, _ := tr.Transform(source, s3Recipe())
	second, _ := tr.Transform(first, s3Recipe())

	assert.Equal(t, strings.TrimSpace(first), strings.TrimSpace(second))
}
