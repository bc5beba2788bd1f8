package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/jsii-runtime-go"
)

func createStackOutputs(stack awscdk.Stack, refresherFunction awslambda.Function) {
	awscdk.NewCfnOutput(stack, jsii.String("RefresherFunctionNameOutput"), &awscdk.CfnOutputProps{
		Value: refresherFunction.FunctionName(),
	})
}
