package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI is the slice of the SQS client the queue widget builder needs.
// *sqs.Client satisfies it.
type SQSAPI interface {
	ListQueues(ctx context.Context, params *sqs.ListQueuesInput, optFns ...func(*sqs.Options)) (*sqs.ListQueuesOutput, error)
	ListQueueTags(ctx context.Context, params *sqs.ListQueueTagsInput, optFns ...func(*sqs.Options)) (*sqs.ListQueueTagsOutput, error)
}

// CreateSQSWidgets enumerates every SQS queue in the account/region and
// returns one metric widget per queue that belongs to IOW in the given
// deploy tier, advancing the positioning cursor past each widget it emits.
func CreateSQSWidgets(ctx context.Context, client SQSAPI, region, deployStage string, titles TitleLookup, positioning *Positioning) ([]Widget, error) {
	queueURLs, err := ListAllQueueURLs(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("listing queues: %w", err)
	}

	var widgets []Widget
	for _, queueURL := range queueURLs {
		eligible, err := isIOWQueue(ctx, client, queueURL, deployStage)
		if err != nil {
			return nil, err
		}
		if !eligible {
			continue
		}

		// incoming queue url: https://us-west-2.queue.amazonaws.com/579777464052/aqts-capture-error-queue-TEST
		// we want the queue name after the last "/"
		queueName, err := queueNameFromURL(queueURL)
		if err != nil {
			return nil, err
		}

		tierAgnosticName := strings.ReplaceAll(queueName, "-"+deployStage, "")
		entry, ok := titles[tierAgnosticName]
		if !ok {
			return nil, &LookupError{Name: tierAgnosticName}
		}

		// queue widgets span the full row
		positioning.Width = fullRowWidth

		widgets = append(widgets, Widget{
			Type:   widgetTypeMetric,
			X:      positioning.X,
			Y:      positioning.Y,
			Width:  positioning.Width,
			Height: positioning.Height + widgetHeightPadding,
			Properties: WidgetProperties{
				Metrics: [][]any{
					{"AWS/SQS", "ApproximateNumberOfMessagesVisible", "QueueName", queueName},
					{".", "ApproximateAgeOfOldestMessage", ".", ".", map[string]any{"yAxis": "right"}},
					{".", "NumberOfMessagesReceived", ".", ".", map[string]any{"stat": "Sum"}},
					{".", "NumberOfMessagesSent", ".", ".", map[string]any{"stat": "Sum"}},
					{".", "NumberOfMessagesDeleted", ".", "."},
					{".", "ApproximateNumberOfMessagesDelayed", ".", "."},
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

// ListAllQueueURLs pages through ListQueues until the account's queues in
// the client's region are exhausted.
func ListAllQueueURLs(ctx context.Context, client SQSAPI) ([]string, error) {
	return listAllPages(func(token *string) ([]string, *string, error) {
		out, err := client.ListQueues(ctx, &sqs.ListQueuesInput{
			MaxResults: aws.Int32(listPageSize),
			NextToken:  token,
		})
		if err != nil {
			return nil, nil, err
		}
		return out.QueueUrls, out.NextToken, nil
	})
}

// isIOWQueue reports whether the queue belongs to the deploy tier and is
// tagged as an IOW asset. The deploy tier is matched first so we only pay
// for a tag lookup on queues in the right tier; a queue with no tags, or
// without the organization tag, is simply not ours.
func isIOWQueue(ctx context.Context, client SQSAPI, queueURL, deployStage string) (bool, error) {
	if !strings.Contains(queueURL, strings.ToUpper(deployStage)) {
		return false, nil
	}

	tags, err := client.ListQueueTags(ctx, &sqs.ListQueueTagsInput{
		QueueUrl: aws.String(queueURL),
	})
	if err != nil {
		return false, fmt.Errorf("listing tags for %s: %w", queueURL, err)
	}

	return tags.Tags[organizationTagKey] == organizationTag, nil
}

func queueNameFromURL(queueURL string) (string, error) {
	idx := strings.LastIndex(queueURL, "/")
	if idx < 0 || idx == len(queueURL)-1 {
		return "", &FormatError{Identifier: queueURL}
	}
	return queueURL[idx+1:], nil
}
