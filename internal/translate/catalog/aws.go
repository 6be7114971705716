package catalog

import "github.com/catherinevee/gcpmigrate/pkg/models"

// awsMappings returns the closed set of AWS→GCP service mappings, ported
// from ServiceMapper.SERVICE_MAPPINGS in the original Python source.
func awsMappings() []*ServiceMapping {
	authDefault := map[string]string{
		"AWS_ACCESS_KEY_ID":     "GOOGLE_APPLICATION_CREDENTIALS",
		"AWS_SECRET_ACCESS_KEY": "GOOGLE_APPLICATION_CREDENTIALS",
	}
	authWithRegion := map[string]string{
		"AWS_ACCESS_KEY_ID":     "GOOGLE_APPLICATION_CREDENTIALS",
		"AWS_SECRET_ACCESS_KEY": "GOOGLE_APPLICATION_CREDENTIALS",
		"AWS_DEFAULT_REGION":    "GOOGLE_CLOUD_REGION",
	}

	return []*ServiceMapping{
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSS3,
			TargetService:  models.GCPCloudStorage,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `\bimport\s+botocore\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/s3`),
			TargetImports:  []string{"from google.cloud import storage", "cloud.google.com/go/storage"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]s3['"]`,
				`\bs3_client\b`,
				`\.upload_file\s*\(`,
				`\.download_file\s*\(`,
				`\.put_object\s*\(`,
				`\.get_object\s*\(`,
				`\.list_objects\s*\(`,
				`\.delete_object\s*\(`,
				`Bucket\s*=`,
				`s3\.amazonaws\.com`,
			),
			TargetAPIHints: mustCompile(`storage\.Client\(\)`, `bucket\.blob\(`, `\.upload_from_filename\(`),
			AuthEnvMap:     authWithRegion,
			ConfigKeyMap:   map[string]string{"s3_endpoint": "gcs_endpoint", "s3_region": "gcs_region", "bucket_name": "bucket_name"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSLambda,
			TargetService:  models.GCPCloudFunctions,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/lambda`),
			TargetImports:  []string{"import functions_framework", "cloud.google.com/go/functions"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]lambda['"]`,
				`\blambda_client\b`,
				`\.invoke\s*\(`,
				`def\s+lambda_handler\s*\(`,
				`event\[['"]Records['"]\]`,
			),
			TargetAPIHints: mustCompile(`@functions_framework\.(http|cloud_event)`, `def\s+process_\w+\(`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"lambda_role": "gcp_service_account", "lambda_timeout": "gcf_timeout", "handler": "entry_point"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSDynamoDB,
			TargetService:  models.GCPFirestore,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/dynamodb`),
			TargetImports:  []string{"from google.cloud import firestore", "cloud.google.com/go/firestore"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]dynamodb['"]`,
				`\bdynamodb_client\b`,
				`\.put_item\s*\(`,
				`\.get_item\s*\(`,
				`\.query\s*\(`,
				`\.scan\s*\(`,
				`\.update_item\s*\(`,
				`\.delete_item\s*\(`,
				`\.batch_write_item\s*\(`,
				`TableName\s*=`,
			),
			TargetAPIHints: mustCompile(`\.collection\(`, `\.document\(`, `\.set\(`, `\.get\(\)`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"read_capacity_units": "not_applicable", "write_capacity_units": "not_applicable", "billing_mode": "not_applicable"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSSQS,
			TargetService:  models.GCPPubSub,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/sqs`),
			TargetImports:  []string{"from google.cloud import pubsub_v1", "cloud.google.com/go/pubsub"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]sqs['"]`,
				`\bsqs_client\b`,
				`\.send_message\s*\(`,
				`\.receive_message\s*\(`,
				`\.delete_message\s*\(`,
				`QueueUrl\s*=`,
				`https://sqs\.`,
			),
			TargetAPIHints: mustCompile(`pubsub_v1\.PublisherClient\(\)`, `\.publish\(`, `\.topic_path\(`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"sqs_queue_name": "pubsub_topic_name", "visibility_timeout": "pubsub_ack_deadline"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSSNS,
			TargetService:  models.GCPPubSub,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/sns`),
			TargetImports:  []string{"from google.cloud import pubsub_v1", "cloud.google.com/go/pubsub"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]sns['"]`,
				`\bsns_client\b`,
				`\.publish\s*\(\s*TopicArn`,
				`\.create_topic\s*\(`,
				`\.subscribe\s*\(`,
				`TopicArn\s*=`,
				`Subject\s*=`,
				`arn:aws:sns:`,
			),
			TargetAPIHints: mustCompile(`pubsub_v1\.PublisherClient\(\)`, `\.publish\(`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"sns_topic_arn": "pubsub_topic_name", "sns_protocol": "pubsub_protocol"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSRDS,
			TargetService:  models.GCPCloudSQL,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/rds`),
			TargetImports:  []string{"from google.cloud.sql.connector import Connector", "cloud.google.com/go/cloudsqlconn"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]rds['"]`,
				`\.create_db_instance\s*\(`,
				`\.delete_db_instance\s*\(`,
				`\.describe_db_instances\s*\(`,
			),
			TargetAPIHints: mustCompile(`Connector\(\)`, `\.connect\(`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"db_instance_class": "db_tier", "allocated_storage": "db_size", "engine": "db_engine"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSEC2,
			TargetService:  models.GCPComputeEngine,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/ec2`),
			TargetImports:  []string{"from google.cloud import compute_v1", "cloud.google.com/go/compute/apiv1"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]ec2['"]`,
				`\.run_instances\s*\(`,
				`\.terminate_instances\s*\(`,
				`\.describe_instances\s*\(`,
			),
			TargetAPIHints: mustCompile(`compute_v1\.InstancesClient\(\)`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"instance_type": "machine_type", "ami_id": "image", "security_group": "firewall_rule"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSCloudWatch,
			TargetService:  models.GCPCloudMonitor,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/cloudwatch`),
			TargetImports:  []string{"from google.cloud import monitoring_v3", "cloud.google.com/go/monitoring/apiv3"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]cloudwatch['"]`,
				`\.put_metric_data\s*\(`,
				`\.get_metric_statistics\s*\(`,
			),
			TargetAPIHints: mustCompile(`MetricServiceClient\(\)`, `\.create_time_series\(`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"namespace": "metric_type", "metric_name": "metric_name"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSAPIGateway,
			TargetService:  models.GCPApigee,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/apigateway`),
			TargetImports:  []string{"import apigee"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]apigateway['"]`,
				`\.create_rest_api\s*\(`,
				`\.create_resource\s*\(`,
				`\.put_method\s*\(`,
				`\.put_integration\s*\(`,
			),
			TargetAPIHints: mustCompile(`apigee\.apis\.(create|deploy)`, `apigee\.proxy\.create`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"api_name": "apigee_api_name", "stage_name": "apigee_environment", "rest_api_id": "apigee_api_id"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSEKS,
			TargetService:  models.GCPGKE,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/eks`),
			TargetImports:  []string{"from google.cloud import container_v1", "cloud.google.com/go/container/apiv1"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]eks['"]`,
				`\.create_cluster\s*\(`,
				`\.describe_cluster\s*\(`,
				`\.delete_cluster\s*\(`,
				`\.list_clusters\s*\(`,
			),
			TargetAPIHints: mustCompile(`ClusterManagerClient\(\)`, `\.create_cluster\(`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"cluster_name": "gke_cluster_name", "role_arn": "gke_service_account", "vpc_config": "gke_network_config"},
		},
		{
			SourceProvider: models.ProviderAWS,
			SourceService:  models.AWSFargate,
			TargetService:  models.GCPCloudRun,
			ImportPatterns: mustCompile(`\bimport\s+boto3\b`, `github\.com/aws/aws-sdk-go(-v2)?/service/ecs`),
			TargetImports:  []string{"from google.cloud import run_v2", "cloud.google.com/go/run/apiv2"},
			APIPatterns: mustCompile(
				`boto3\.client\(['"]ecs['"]`,
				`\.run_task\s*\(`,
				`\.start_task\s*\(`,
				`\.register_task_definition\s*\(`,
			),
			TargetAPIHints: mustCompile(`run_v2\.ServicesClient`, `\.create_service\(`, `\.run_job\(`),
			AuthEnvMap:     authDefault,
			ConfigKeyMap:   map[string]string{"task_definition": "cloud_run_service", "cluster": "cloud_run_location", "launch_type": "execution_environment"},
		},
	}
}
