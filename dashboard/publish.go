package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

// CloudWatchAPI is the slice of the CloudWatch client the publisher needs.
// *cloudwatch.Client satisfies it.
type CloudWatchAPI interface {
	PutDashboard(ctx context.Context, params *cloudwatch.PutDashboardInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutDashboardOutput, error)
}

// Body is the top-level CloudWatch dashboard document.
type Body struct {
	Widgets []Widget `json:"widgets"`
}

// Builder bundles the clients and lookup tables for one dashboard run.
type Builder struct {
	SQS        SQSAPI
	Lambda     LambdaAPI
	CloudWatch CloudWatchAPI

	Region      string
	DeployStage string

	QueueTitles    TitleLookup
	FunctionTitles TitleLookup
}

// BuildWidgets runs every resource-type builder in order, threading one
// positioning cursor through all of them so widgets keep packing where the
// previous builder left off.
func (b *Builder) BuildWidgets(ctx context.Context) ([]Widget, error) {
	positioning := NewPositioning()

	widgets, err := CreateSQSWidgets(ctx, b.SQS, b.Region, b.DeployStage, b.QueueTitles, positioning)
	if err != nil {
		return nil, err
	}
	log.Printf("built %d queue widgets", len(widgets))

	lambdaWidgets, err := CreateLambdaWidgets(ctx, b.Lambda, b.Region, b.DeployStage, b.FunctionTitles, positioning)
	if err != nil {
		return nil, err
	}
	log.Printf("built %d function widgets", len(lambdaWidgets))

	return append(widgets, lambdaWidgets...), nil
}

// Publish serializes the widgets into a dashboard body and creates or
// updates the named dashboard. CloudWatch reports body problems as
// validation messages on a 200 response, so those are checked too.
func (b *Builder) Publish(ctx context.Context, name string, widgets []Widget) error {
	body, err := json.Marshal(Body{Widgets: widgets})
	if err != nil {
		return fmt.Errorf("marshaling dashboard body: %w", err)
	}

	out, err := b.CloudWatch.PutDashboard(ctx, &cloudwatch.PutDashboardInput{
		DashboardName: aws.String(name),
		DashboardBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("putting dashboard %s: %w", name, err)
	}

	if len(out.DashboardValidationMessages) > 0 {
		for _, msg := range out.DashboardValidationMessages {
			log.Printf("dashboard validation: %s: %s", aws.ToString(msg.DataPath), aws.ToString(msg.Message))
		}
		return fmt.Errorf("dashboard %s rejected with %d validation messages", name, len(out.DashboardValidationMessages))
	}

	log.Printf("published dashboard %s with %d widgets", name, len(widgets))
	return nil
}
