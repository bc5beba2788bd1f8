package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/iow-ops/cloudwatch-monitoring/config"
)

// NewMonitoringStack wires the scheduled dashboard refresher: the Lambda
// that rebuilds the dashboard, the hourly rule that triggers it, and the
// alarm path for when it breaks.
func NewMonitoringStack(scope constructs.Construct, id string, props *MonitoringStackProps) awscdk.Stack {
	resources := &MonitoringResources{
		stack: initializeStack(scope, id, props),
	}
	resources.alarmTopic = createMonitoringResources(resources.stack)

	refresherFunction, _ := createRefresherResources(resources)
	createRefreshSchedule(resources.stack, refresherFunction)

	refresherAlarm := createRefresherErrorAlarm(resources.stack, refresherFunction)
	attachAlarmTopic(refresherAlarm, resources.alarmTopic)

	createStackOutputs(resources.stack, refresherFunction)

	return resources.stack
}

func main() {
	defer jsii.Close()

	// Load .env variables one time
	config.LoadDotEnv()

	app := awscdk.NewApp(nil)
	NewMonitoringStack(app, "CloudwatchMonitoringStack", &MonitoringStackProps{
		awscdk.StackProps{
			Env: env(),
		},
	})

	app.Synth(nil)
}

func env() *awscdk.Environment {
	return &awscdk.Environment{
		Account: jsii.String(os.Getenv("ACCOUNT_ID")),
		Region:  jsii.String(config.EnvOr("ACCOUNT_REGION", "us-west-2")),
	}
}
