package main

import (
	"fmt"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	lambdasvc "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/spf13/cobra"

	"github.com/iow-ops/cloudwatch-monitoring/config"
	"github.com/iow-ops/cloudwatch-monitoring/dashboard"
)

func newCreateDashboardCmd() *cobra.Command {
	var (
		region      string
		deployStage string
		name        string
		lookupFile  string
	)

	cmd := &cobra.Command{
		Use:   "create-dashboard",
		Short: "Inventory ETL assets and create/update the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
			if err != nil {
				return fmt.Errorf("failed to load AWS config: %w", err)
			}

			var lookups *config.Lookups
			if lookupFile != "" {
				lookups, err = config.LoadLookups(lookupFile)
			} else {
				lookups, err = config.DefaultLookups()
			}
			if err != nil {
				return err
			}

			if name == "" {
				name = "aqts-capture-etl-" + deployStage
			}

			builder := &dashboard.Builder{
				SQS:            sqs.NewFromConfig(cfg),
				Lambda:         lambdasvc.NewFromConfig(cfg),
				CloudWatch:     cloudwatch.NewFromConfig(cfg),
				Region:         region,
				DeployStage:    deployStage,
				QueueTitles:    lookups.SQSQueues,
				FunctionTitles: lookups.LambdaFunctions,
			}

			log.Printf("building dashboard %s for tier %s in %s", name, deployStage, region)

			widgets, err := builder.BuildWidgets(ctx)
			if err != nil {
				return err
			}

			return builder.Publish(ctx, name, widgets)
		},
	}

	cmd.Flags().StringVar(&region, "region", "us-west-2", "AWS region to inventory")
	cmd.Flags().StringVar(&deployStage, "deploy-stage", "", "deploy tier (DEV, TEST, QA, PROD-EXTERNAL)")
	cmd.Flags().StringVar(&name, "name", "", "dashboard name (default aqts-capture-etl-<deploy-stage>)")
	cmd.Flags().StringVar(&lookupFile, "lookup-file", "", "YAML title lookup file overriding the embedded tables")
	_ = cmd.MarkFlagRequired("deploy-stage")

	return cmd
}
