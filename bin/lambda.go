package main

import (
	"path/filepath"
	"runtime"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3assets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/jsii-runtime-go"

	"github.com/iow-ops/cloudwatch-monitoring/config"
)

// Refresher Lambda related resources
func createRefresherResources(resources *MonitoringResources) (awslambda.Function, awssqs.IQueue) {
	// Create DLQ
	deadLetterQueue := createDeadLetterQueue(resources.stack)

	// Create Lambda function
	refresherFunction := createRefresherFunction(resources.stack, deadLetterQueue)

	// Grant the inventory and dashboard permissions
	configureRefresherIAM(refresherFunction)

	return refresherFunction, deadLetterQueue
}

func createDeadLetterQueue(stack awscdk.Stack) awssqs.IQueue {
	return awssqs.NewQueue(stack, jsii.String("RefresherDLQ"), &awssqs.QueueProps{
		QueueName:       jsii.String("dashboard-refresher-dlq"),
		RetentionPeriod: awscdk.Duration_Days(jsii.Number(7)),
	})
}

func createRefresherFunction(stack awscdk.Stack, dlq awssqs.IQueue) awslambda.Function {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("Could not get file name")
	}
	lambdaDir := filepath.Join(filepath.Dir(filename), "lambda")

	return awslambda.NewFunction(stack, jsii.String("dashboardRefresher"), &awslambda.FunctionProps{
		Runtime:         awslambda.Runtime_PROVIDED_AL2(),
		Handler:         jsii.String("bootstrap"),
		RetryAttempts:   jsii.Number(2),
		MemorySize:      jsii.Number(256),
		Timeout:         awscdk.Duration_Minutes(jsii.Number(5)),
		Architecture:    awslambda.Architecture_X86_64(),
		DeadLetterQueue: dlq,
		Code:            awslambda.Code_FromAsset(jsii.String(lambdaDir), &awss3assets.AssetOptions{}),
		Environment: &map[string]*string{
			"DEPLOY_STAGE":   jsii.String(config.MustEnv("DEPLOY_STAGE")),
			"DASHBOARD_NAME": jsii.String(config.EnvOr("DASHBOARD_NAME", "")),
		},
		Tracing: awslambda.Tracing_ACTIVE,
	})
}

func configureRefresherIAM(refresherFunction awslambda.Function) {
	// Read-only inventory calls plus the dashboard write; none of these
	// support resource-level scoping.
	refresherFunction.AddToRolePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect: awsiam.Effect_ALLOW,
		Actions: jsii.Strings(
			"sqs:ListQueues",
			"sqs:ListQueueTags",
			"lambda:ListFunctions",
			"lambda:ListTags",
			"cloudwatch:PutDashboard",
		),
		Resources: jsii.Strings("*"),
	}))
}
