package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
)

type MonitoringStackProps struct {
	awscdk.StackProps
}

type MonitoringResources struct {
	stack      awscdk.Stack
	alarmTopic awssns.ITopic
}
