package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	lambdasvc "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/iow-ops/cloudwatch-monitoring/config"
	"github.com/iow-ops/cloudwatch-monitoring/dashboard"
)

// Global AWS clients
var (
	sqsClient        *sqs.Client
	lambdaClient     *lambdasvc.Client
	cloudWatchClient *cloudwatch.Client
	awsRegion        string
)

// This init() function will run once Lambda starts
func init() {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		panic(fmt.Sprintf("failed to load AWS config: %v", err))
	}

	// Here, we initialize AWS clients once
	sqsClient = sqs.NewFromConfig(cfg)
	lambdaClient = lambdasvc.NewFromConfig(cfg)
	cloudWatchClient = cloudwatch.NewFromConfig(cfg)
	awsRegion = cfg.Region
}

// handler rebuilds and republishes the ETL monitoring dashboard for the
// deploy tier this function is configured for.
func handler(ctx context.Context) error {
	deployStage := os.Getenv("DEPLOY_STAGE")
	if deployStage == "" {
		return fmt.Errorf("DEPLOY_STAGE environment variable not set")
	}
	dashboardName := config.EnvOr("DASHBOARD_NAME", "aqts-capture-etl-"+deployStage)

	lookups, err := config.DefaultLookups()
	if err != nil {
		return fmt.Errorf("failed to load lookup tables: %v", err)
	}

	builder := &dashboard.Builder{
		SQS:            sqsClient,
		Lambda:         lambdaClient,
		CloudWatch:     cloudWatchClient,
		Region:         awsRegion,
		DeployStage:    deployStage,
		QueueTitles:    lookups.SQSQueues,
		FunctionTitles: lookups.LambdaFunctions,
	}

	log.Printf("rebuilding dashboard %s for tier %s in %s", dashboardName, deployStage, awsRegion)

	widgets, err := builder.BuildWidgets(ctx)
	if err != nil {
		return fmt.Errorf("failed to build widgets: %w", err)
	}

	return builder.Publish(ctx, dashboardName, widgets)
}

// The handler() function is called here
func main() {
	lambda.Start(handler)
}
