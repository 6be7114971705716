//go:build golden

// aws_shapes.go anchors the catalog's AWS source-side API-pattern regexes
// (internal/translate/catalog/aws.go) in the real aws-sdk-go-v2 client
// method signatures, grounded in internal/providers/aws/services/*.go and
// internal/providers/aws/services/disabled/*.go.
package golden

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// classicSDKVersionShape pins the classic, v1 aws-sdk-go dependency (kept
// from the teacher alongside v2) to a real symbol so it remains a live
// import rather than a declared-but-unused module requirement.
func classicSDKVersionShape() string {
	return awssdk.SDKName
}

func s3Shape(ctx context.Context, client *s3.Client) error {
	_, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
	return err
}

func lambdaShape(ctx context.Context, client *lambda.Client) error {
	_, err := client.ListFunctions(ctx, &lambda.ListFunctionsInput{})
	return err
}

func dynamoDBShape(ctx context.Context, client *dynamodb.Client) error {
	_, err := client.ListTables(ctx, &dynamodb.ListTablesInput{})
	return err
}

func snsShape(ctx context.Context, client *sns.Client) error {
	_, err := client.ListTopics(ctx, &sns.ListTopicsInput{})
	return err
}

func sqsShape(ctx context.Context, client *sqs.Client) error {
	_, err := client.ListQueues(ctx, &sqs.ListQueuesInput{})
	return err
}

func rdsShape(ctx context.Context, client *rds.Client) error {
	_, err := client.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{})
	return err
}

func ec2Shape(ctx context.Context, client *ec2.Client) error {
	_, err := client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	return err
}

func cloudWatchShape(ctx context.Context, client *cloudwatch.Client) error {
	_, err := client.ListMetrics(ctx, &cloudwatch.ListMetricsInput{})
	return err
}

func eksShape(ctx context.Context, client *eks.Client) error {
	_, err := client.ListClusters(ctx, &eks.ListClustersInput{})
	return err
}
