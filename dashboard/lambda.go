package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// LambdaAPI is the slice of the Lambda client the function widget builder
// needs. *lambda.Client satisfies it.
type LambdaAPI interface {
	ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error)
	ListTags(ctx context.Context, params *lambda.ListTagsInput, optFns ...func(*lambda.Options)) (*lambda.ListTagsOutput, error)
}

// CreateLambdaWidgets enumerates every Lambda function in the
// account/region and returns one metric widget per function that belongs
// to IOW in the given deploy tier. Same filter and layout behavior as the
// queue builder, keyed on the function ARN.
func CreateLambdaWidgets(ctx context.Context, client LambdaAPI, region, deployStage string, titles TitleLookup, positioning *Positioning) ([]Widget, error) {
	functionARNs, err := ListAllFunctionARNs(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("listing functions: %w", err)
	}

	var widgets []Widget
	for _, functionARN := range functionARNs {
		eligible, err := isIOWFunction(ctx, client, functionARN, deployStage)
		if err != nil {
			return nil, err
		}
		if !eligible {
			continue
		}

		// arn:aws:lambda:us-west-2:579777464052:function:aqts-capture-trigger-TEST
		functionName, err := functionNameFromARN(functionARN)
		if err != nil {
			return nil, err
		}

		tierAgnosticName := strings.ReplaceAll(functionName, "-"+deployStage, "")
		entry, ok := titles[tierAgnosticName]
		if !ok {
			return nil, &LookupError{Name: tierAgnosticName}
		}

		positioning.Width = fullRowWidth

		widgets = append(widgets, Widget{
			Type:   widgetTypeMetric,
			X:      positioning.X,
			Y:      positioning.Y,
			Width:  positioning.Width,
			Height: positioning.Height + widgetHeightPadding,
			Properties: WidgetProperties{
				Metrics: [][]any{
					{"AWS/Lambda", "ConcurrentExecutions", "FunctionName", functionName},
					{".", "Duration", ".", ".", map[string]any{"yAxis": "right"}},
					{".", "Invocations", ".", ".", map[string]any{"stat": "Sum"}},
					{".", "Errors", ".", ".", map[string]any{"stat": "Sum"}},
					{".", "Throttles", ".", "."},
					{".", "IteratorAge", ".", "."},
				},
				View:    viewTimeSeries,
				Stacked: false,
				Region:  region,
				Period:  metricPeriod,
				Title:   entry.Title,
				Stat:    metricStat,
			},
		})
		positioning.Advance()
	}

	return widgets, nil
}

// ListAllFunctionARNs pages through ListFunctions until the account's
// functions in the client's region are exhausted.
func ListAllFunctionARNs(ctx context.Context, client LambdaAPI) ([]string, error) {
	return listAllPages(func(token *string) ([]string, *string, error) {
		out, err := client.ListFunctions(ctx, &lambda.ListFunctionsInput{
			MaxItems: aws.Int32(listPageSize),
			Marker:   token,
		})
		if err != nil {
			return nil, nil, err
		}

		arns := make([]string, 0, len(out.Functions))
		for _, fn := range out.Functions {
			arns = append(arns, aws.ToString(fn.FunctionArn))
		}
		return arns, out.NextMarker, nil
	})
}

// isIOWFunction mirrors isIOWQueue for Lambda functions: deploy tier
// substring match first, then the organization tag.
func isIOWFunction(ctx context.Context, client LambdaAPI, functionARN, deployStage string) (bool, error) {
	if !strings.Contains(functionARN, strings.ToUpper(deployStage)) {
		return false, nil
	}

	tags, err := client.ListTags(ctx, &lambda.ListTagsInput{
		Resource: aws.String(functionARN),
	})
	if err != nil {
		return false, fmt.Errorf("listing tags for %s: %w", functionARN, err)
	}

	return tags.Tags[organizationTagKey] == organizationTag, nil
}

func functionNameFromARN(functionARN string) (string, error) {
	idx := strings.LastIndex(functionARN, ":")
	if idx < 0 || idx == len(functionARN)-1 {
		return "", &FormatError{Identifier: functionARN}
	}
	return functionARN[idx+1:], nil
}
