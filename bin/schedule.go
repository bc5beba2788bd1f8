package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsevents"
	"github.com/aws/aws-cdk-go/awscdk/v2/awseventstargets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/jsii-runtime-go"
)

// Hourly refresh keeps the dashboard tracking assets as they come and go.
func createRefreshSchedule(stack awscdk.Stack, refresherFunction awslambda.Function) awsevents.Rule {
	rule := awsevents.NewRule(stack, jsii.String("DashboardRefreshRule"), &awsevents.RuleProps{
		RuleName: jsii.String("dashboard-refresh-hourly"),
		Schedule: awsevents.Schedule_Rate(awscdk.Duration_Hours(jsii.Number(1))),
	})

	rule.AddTarget(awseventstargets.NewLambdaFunction(refresherFunction, &awseventstargets.LambdaFunctionProps{}))

	return rule
}
