// Command cloudwatch-monitoring creates the CloudWatch dashboard for the
// aqts-capture ETL assets in one deploy tier. It is the one-shot entry
// point the CI job runs after a deployment.
//
// Usage:
//
//	cloudwatch-monitoring create-dashboard --deploy-stage TEST
//	cloudwatch-monitoring version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iow-ops/cloudwatch-monitoring/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cloudwatch-monitoring",
		Short: "Create the CloudWatch dashboard for IOW ETL assets",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadDotEnv()
		},
	}

	rootCmd.AddCommand(
		newCreateDashboardCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cloudwatch-monitoring %s\n", getVersion())
		},
	}
}
