package catalog

import "github.com/catherinevee/gcpmigrate/pkg/models"

// azureMappings returns the closed set of Azure→GCP service mappings, ported
// from AzureServiceMapper.SERVICE_MAPPINGS in the original Python source.
func azureMappings() []*ServiceMapping {
	return []*ServiceMapping{
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureBlobStorage,
			TargetService:  models.GCPCloudStorage,
			ImportPatterns: mustCompile(`azure\.storage\.blob`, `Azure\.Storage\.Blobs`),
			TargetImports:  []string{"google.cloud.storage", "cloud.google.com/go/storage"},
			APIPatterns: mustCompile(
				`BlobServiceClient`,
				`blob_client\.`,
				`container_client\.`,
				`upload_blob`,
				`download_blob`,
			),
			TargetAPIHints: mustCompile(`storage\.Client\(`, `bucket\.blob`, `blob\.upload_from`, `blob\.download_`),
			AuthEnvMap: map[string]string{
				"AZURE_STORAGE_ACCOUNT_NAME": "GOOGLE_CLOUD_PROJECT",
				"AZURE_STORAGE_ACCOUNT_KEY":  "GOOGLE_APPLICATION_CREDENTIALS",
			},
			ConfigKeyMap: map[string]string{"storage_account": "bucket_name", "container_name": "gcs_bucket"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureFunctions,
			TargetService:  models.GCPCloudFunctions,
			ImportPatterns: mustCompile(`azure\.functions`, `Microsoft\.Azure\.WebJobs`),
			TargetImports:  []string{"functions_framework", "cloud.google.com/go/functions"},
			APIPatterns: mustCompile(
				`@function_app`,
				`def\s+main\s*\(`,
				`func\.HttpRequest`,
				`func\.Out`,
			),
			TargetAPIHints: mustCompile(`@functions_framework\.`, `def\s+function\s*\(`, `request\.json`),
			AuthEnvMap:     map[string]string{"AzureWebJobsStorage": "GOOGLE_APPLICATION_CREDENTIALS"},
			ConfigKeyMap:   map[string]string{"function_name": "gcf_function_name", "trigger": "gcf_trigger"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureCosmosDB,
			TargetService:  models.GCPFirestore,
			ImportPatterns: mustCompile(`azure\.cosmos`, `Microsoft\.Azure\.Cosmos`),
			TargetImports:  []string{"google.cloud.firestore", "cloud.google.com/go/firestore"},
			APIPatterns: mustCompile(
				`CosmosClient`,
				`\bdatabase\.`,
				`\bcontainer\.`,
				`create_item`,
				`read_item`,
			),
			TargetAPIHints: mustCompile(`firestore\.Client\(`, `\.collection\(`, `\.document\(`, `doc\.set`, `doc\.get`),
			AuthEnvMap: map[string]string{
				"COSMOS_ENDPOINT":    "GOOGLE_CLOUD_PROJECT",
				"COSMOS_MASTER_KEY":  "GOOGLE_APPLICATION_CREDENTIALS",
			},
			ConfigKeyMap: map[string]string{"database_id": "firestore_project", "container_id": "collection_name"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureServiceBus,
			TargetService:  models.GCPPubSub,
			ImportPatterns: mustCompile(`azure\.servicebus`, `Azure\.Messaging\.ServiceBus`),
			TargetImports:  []string{"google.cloud.pubsub", "cloud.google.com/go/pubsub"},
			APIPatterns: mustCompile(
				`ServiceBusClient`,
				`QueueClient`,
				`TopicClient`,
				`sender\.`,
				`receiver\.`,
			),
			TargetAPIHints: mustCompile(`publisher\.`, `subscriber\.`, `pubsub_v1\.`),
			AuthEnvMap:     map[string]string{"SERVICEBUS_CONNECTION_STRING": "GOOGLE_APPLICATION_CREDENTIALS"},
			ConfigKeyMap:   map[string]string{"queue_name": "pubsub_topic", "topic_name": "pubsub_topic"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureEventHubs,
			TargetService:  models.GCPPubSub,
			ImportPatterns: mustCompile(`azure\.eventhub`, `Azure\.Messaging\.EventHubs`),
			TargetImports:  []string{"google.cloud.pubsub", "cloud.google.com/go/pubsub"},
			APIPatterns: mustCompile(
				`EventHubProducerClient`,
				`EventHubConsumerClient`,
				`sender\.`,
				`receiver\.`,
			),
			TargetAPIHints: mustCompile(`publisher\.`, `subscriber\.`, `pubsub_v1\.`),
			AuthEnvMap:     map[string]string{"EVENT_HUBS_CONNECTION_STRING": "GOOGLE_APPLICATION_CREDENTIALS"},
			ConfigKeyMap:   map[string]string{"eventhub_name": "pubsub_topic", "consumer_group": "pubsub_subscription"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureSQLDatabase,
			TargetService:  models.GCPCloudSQL,
			ImportPatterns: mustCompile(`\bpyodbc\b`, `\bpymssql\b`, `Microsoft\.Data\.SqlClient`),
			TargetImports:  []string{"google.cloud.sql.connector", "cloud.google.com/go/cloudsqlconn"},
			APIPatterns: mustCompile(
				`server\s*=.*database\.windows\.net`,
				`driver\s*=.*ODBC Driver`,
			),
			TargetAPIHints: mustCompile(`Connector\(`, `conn\.execute`),
			AuthEnvMap:     map[string]string{"AZURE_SQL_SERVER": "GOOGLE_CLOUD_SQL_INSTANCE"},
			ConfigKeyMap:   map[string]string{"database": "cloud_sql_database", "server": "cloud_sql_connection_name"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureVMs,
			TargetService:  models.GCPComputeEngine,
			ImportPatterns: mustCompile(`azure\.mgmt\.compute`, `Azure\.ResourceManager\.Compute`),
			TargetImports:  []string{"google.cloud.compute_v1", "cloud.google.com/go/compute/apiv1"},
			APIPatterns: mustCompile(
				`ComputeManagementClient`,
				`virtual_machines\.`,
				`vm_sizes\.`,
				`create_or_update`,
			),
			TargetAPIHints: mustCompile(`compute_v1\.InstancesClient\(`, `\.insert\(`, `\.get\(`),
			AuthEnvMap: map[string]string{
				"AZURE_CLIENT_ID":     "GOOGLE_APPLICATION_CREDENTIALS",
				"AZURE_CLIENT_SECRET": "GOOGLE_APPLICATION_CREDENTIALS",
			},
			ConfigKeyMap: map[string]string{"vm_size": "machine_type", "storage_account_type": "disk_type"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureMonitor,
			TargetService:  models.GCPCloudMonitor,
			ImportPatterns: mustCompile(`azure\.monitor\.query`, `Azure\.Monitor\.Query`),
			TargetImports:  []string{"google.cloud.monitoring_v3", "cloud.google.com/go/monitoring/apiv3"},
			APIPatterns: mustCompile(
				`MetricsQueryClient`,
				`logs_query_client`,
				`execute_query`,
			),
			TargetAPIHints: mustCompile(`metric_service_client\.`, `\.query\(`),
			AuthEnvMap:     map[string]string{"AZURE_LOG_ANALYTICS_WORKSPACE_ID": "GOOGLE_CLOUD_PROJECT"},
			ConfigKeyMap:   map[string]string{"workspace_id": "project_id", "metric_namespace": "metric_type"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureAPIMgmt,
			TargetService:  models.GCPApigee,
			ImportPatterns: mustCompile(`azure\.mgmt\.apimanagement`, `Azure\.ResourceManager\.ApiManagement`),
			TargetImports:  []string{"apigee"},
			APIPatterns: mustCompile(
				`ApiManagementClient`,
				`api_management\.`,
				`\bapis\.`,
				`\boperations\.`,
			),
			TargetAPIHints: mustCompile(`apigee\.apis\.`, `create_api`, `\bdeploy\b`),
			AuthEnvMap:     map[string]string{"AZURE_SUBSCRIPTION_ID": "GOOGLE_CLOUD_PROJECT"},
			ConfigKeyMap:   map[string]string{"api_id": "apigee_api_name", "resource_group": "gcp_region"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureRedisCache,
			TargetService:  models.GCPMemorystore,
			ImportPatterns: mustCompile(`\bimport\s+redis\b`, `StackExchange\.Redis`),
			TargetImports:  []string{"google.cloud.redis_v1", "cloud.google.com/go/redis/apiv1"},
			APIPatterns: mustCompile(
				`redis\.StrictRedis\(`,
				`redis\.Redis\(`,
				`\br\.get\(`,
				`\br\.set\(`,
			),
			TargetAPIHints: mustCompile(`redis_v1\.CloudRedisClient\(`, `get_instance\(`, `create_instance\(`),
			AuthEnvMap: map[string]string{
				"AZURE_REDIS_HOST": "GOOGLE_CLOUD_PROJECT",
				"AZURE_REDIS_KEY":  "GOOGLE_APPLICATION_CREDENTIALS",
			},
			ConfigKeyMap: map[string]string{"host": "memorystore_instance", "port": "memorystore_port"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureAKS,
			TargetService:  models.GCPGKE,
			ImportPatterns: mustCompile(`azure\.mgmt\.containerservice`, `Azure\.ResourceManager\.ContainerService`),
			TargetImports:  []string{"google.cloud.container_v1", "cloud.google.com/go/container/apiv1"},
			APIPatterns: mustCompile(
				`ContainerServiceClient`,
				`managed_clusters\.`,
				`create_or_update`,
			),
			TargetAPIHints: mustCompile(`container_v1\.ClusterManagerClient\(`, `create_cluster\(`, `get_cluster\(`),
			AuthEnvMap:     map[string]string{"AZURE_SUBSCRIPTION_ID": "GOOGLE_CLOUD_PROJECT"},
			ConfigKeyMap:   map[string]string{"agent_pool_profiles": "node_config", "kubernetes_version": "initial_cluster_version"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureContainerIn,
			TargetService:  models.GCPCloudRun,
			ImportPatterns: mustCompile(`azure\.mgmt\.containerinstance`, `Azure\.ResourceManager\.ContainerInstance`),
			TargetImports:  []string{"google.cloud.run_v2", "cloud.google.com/go/run/apiv2"},
			APIPatterns: mustCompile(
				`ContainerInstanceManagementClient`,
				`container_groups\.`,
				`\bcontainers\.`,
				`create_or_update`,
			),
			TargetAPIHints: mustCompile(`run_v2\.ServicesClient\(`, `create_service\(`, `get_service\(`),
			AuthEnvMap:     map[string]string{"AZURE_SUBSCRIPTION_ID": "GOOGLE_CLOUD_PROJECT"},
			ConfigKeyMap:   map[string]string{"containers": "container_config", "os_type": "execution_environment"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureAppService,
			TargetService:  models.GCPCloudRun,
			ImportPatterns: mustCompile(`azure\.mgmt\.web`, `Azure\.ResourceManager\.AppService`),
			TargetImports:  []string{"google.cloud.run_v2", "cloud.google.com/go/run/apiv2"},
			APIPatterns: mustCompile(
				`WebSiteManagementClient`,
				`webapps\.`,
				`create_or_update`,
				`\bdeploy\b`,
			),
			TargetAPIHints: mustCompile(`run_v2\.ServicesClient\(`, `create_service\(`, `deploy_service\(`),
			AuthEnvMap:     map[string]string{"AZURE_SUBSCRIPTION_ID": "GOOGLE_CLOUD_PROJECT"},
			ConfigKeyMap:   map[string]string{"app_service_plan": "cloud_run_service", "site_name": "service_name"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureKeyVault,
			TargetService:  models.GCPSecretManager,
			ImportPatterns: mustCompile(`azure\.keyvault\.secrets`, `azure\.identity`, `Azure\.Security\.KeyVault`),
			TargetImports:  []string{"google.cloud.secretmanager", "cloud.google.com/go/secretmanager/apiv1"},
			APIPatterns: mustCompile(
				`SecretClient`,
				`KeyVaultClient`,
				`get_secret`,
				`set_secret`,
				`delete_secret`,
				`list_secrets`,
			),
			TargetAPIHints: mustCompile(`secretmanager\.SecretManagerServiceClient\(`, `access_secret_version`, `create_secret`),
			AuthEnvMap: map[string]string{
				"AZURE_KEY_VAULT_URL": "GOOGLE_CLOUD_PROJECT",
				"AZURE_CLIENT_ID":     "GOOGLE_APPLICATION_CREDENTIALS",
				"AZURE_CLIENT_SECRET": "GOOGLE_APPLICATION_CREDENTIALS",
				"AZURE_TENANT_ID":     "GOOGLE_CLOUD_PROJECT",
			},
			ConfigKeyMap: map[string]string{"vault_url": "project_id", "secret_name": "secret_id", "secret_version": "version_id"},
		},
		{
			SourceProvider: models.ProviderAzure,
			SourceService:  models.AzureAppInsights,
			TargetService:  models.GCPCloudMonitor,
			ImportPatterns: mustCompile(`azure\.applicationinsights`, `applicationinsights`, `Microsoft\.ApplicationInsights`),
			TargetImports:  []string{"google.cloud.monitoring_v3", "google.cloud.logging", "cloud.google.com/go/monitoring/apiv3"},
			APIPatterns: mustCompile(
				`ApplicationInsightsClient`,
				`TelemetryClient`,
				`track_event`,
				`track_exception`,
				`track_metric`,
				`track_trace`,
				`\bflush\b`,
			),
			TargetAPIHints: mustCompile(`monitoring_v3\.MetricServiceClient\(`, `logging\.Client\(`, `create_time_series`, `log_struct`),
			AuthEnvMap: map[string]string{
				"APPINSIGHTS_INSTRUMENTATION_KEY": "GOOGLE_CLOUD_PROJECT",
				"APPINSIGHTS_CONNECTION_STRING":   "GOOGLE_CLOUD_PROJECT",
			},
			ConfigKeyMap: map[string]string{"instrumentation_key": "project_id", "connection_string": "project_id", "app_id": "project_id"},
		},
	}
}
