// Package models holds the value types shared across gcpmigrate's public
// boundary: provider/service/language tags and the wire-stable vocabulary
// used by the catalog, detector, and plan executor.
package models

// CloudProvider identifies a source or target cloud.
type CloudProvider string

const (
	ProviderAWS   CloudProvider = "aws"
	ProviderAzure CloudProvider = "azure"
	ProviderGCP   CloudProvider = "gcp"
)

// Language identifies the source file's programming language.
type Language string

const (
	LanguagePython Language = "python"
	LanguageJava   Language = "java"
	LanguageGo     Language = "go"
	LanguageCSharp Language = "csharp"
)

// ServiceTag is a stable, wire-visible identifier for a source-cloud
// service, e.g. "aws_s3" or "azure_blob_storage".
type ServiceTag string

const (
	AWSS3            ServiceTag = "aws_s3"
	AWSLambda        ServiceTag = "aws_lambda"
	AWSDynamoDB      ServiceTag = "aws_dynamodb"
	AWSSQS           ServiceTag = "aws_sqs"
	AWSSNS           ServiceTag = "aws_sns"
	AWSRDS           ServiceTag = "aws_rds"
	AWSEC2           ServiceTag = "aws_ec2"
	AWSCloudWatch    ServiceTag = "aws_cloudwatch"
	AWSAPIGateway    ServiceTag = "aws_apigateway"
	AWSEKS           ServiceTag = "aws_eks"
	AWSFargate       ServiceTag = "aws_fargate"
	AzureBlobStorage ServiceTag = "azure_blob_storage"
	AzureFunctions   ServiceTag = "azure_functions"
	AzureCosmosDB    ServiceTag = "azure_cosmos_db"
	AzureServiceBus  ServiceTag = "azure_service_bus"
	AzureEventHubs   ServiceTag = "azure_event_hubs"
	AzureSQLDatabase ServiceTag = "azure_sql_database"
	AzureVMs         ServiceTag = "azure_virtual_machines"
	AzureMonitor     ServiceTag = "azure_monitor"
	AzureAPIMgmt     ServiceTag = "azure_api_management"
	AzureRedisCache  ServiceTag = "azure_redis_cache"
	AzureAKS         ServiceTag = "azure_aks"
	AzureContainerIn ServiceTag = "azure_container_instances"
	AzureAppService  ServiceTag = "azure_app_service"
	AzureKeyVault    ServiceTag = "azure_key_vault"
	AzureAppInsights ServiceTag = "azure_application_insights"
)

// TargetServiceTag identifies the GCP service a source service maps to.
type TargetServiceTag string

const (
	GCPCloudStorage   TargetServiceTag = "cloud_storage"
	GCPCloudFunctions TargetServiceTag = "cloud_functions"
	GCPFirestore      TargetServiceTag = "firestore"
	GCPPubSub         TargetServiceTag = "pub_sub"
	GCPCloudSQL       TargetServiceTag = "cloud_sql"
	GCPComputeEngine  TargetServiceTag = "compute_engine"
	GCPCloudMonitor   TargetServiceTag = "cloud_monitoring"
	GCPApigee         TargetServiceTag = "apigee"
	GCPGKE            TargetServiceTag = "gke"
	GCPCloudRun       TargetServiceTag = "cloud_run"
	GCPSecretManager  TargetServiceTag = "secret_manager"
	GCPMemorystore    TargetServiceTag = "memorystore"
)

// OperationTag identifies the recipe operation driving a RefactoringTask.
type OperationTag string

// NoOp marks a task that performs no file edit (bookkeeping only).
const NoOp OperationTag = "no_op"

// MigrateOperation builds the operation tag for a given target service,
// e.g. MigrateOperation(GCPCloudStorage) == "migrate_cloud_storage_to_gcp".
func MigrateOperation(target TargetServiceTag) OperationTag {
	return OperationTag("migrate_" + string(target) + "_to_gcp")
}

// MatchRegion is a single match location reported by the pattern detector.
type MatchRegion struct {
	Pattern string
	Start   int
	End     int
	Text    string
}
