package dashboard

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLambdaClient struct {
	pages    [][]string
	tags     map[string]map[string]string
	listErr  error
	tagCalls []string
}

func (m *mockLambdaClient) ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	idx := 0
	if params.Marker != nil {
		idx, _ = strconv.Atoi(*params.Marker)
	}

	out := &lambda.ListFunctionsOutput{}
	for _, arn := range m.pages[idx] {
		out.Functions = append(out.Functions, types.FunctionConfiguration{
			FunctionArn: aws.String(arn),
		})
	}
	if idx+1 < len(m.pages) {
		out.NextMarker = aws.String(strconv.Itoa(idx + 1))
	}
	return out, nil
}

func (m *mockLambdaClient) ListTags(ctx context.Context, params *lambda.ListTagsInput, optFns ...func(*lambda.Options)) (*lambda.ListTagsOutput, error) {
	m.tagCalls = append(m.tagCalls, aws.ToString(params.Resource))
	return &lambda.ListTagsOutput{Tags: m.tags[aws.ToString(params.Resource)]}, nil
}

func TestListAllFunctionARNs(t *testing.T) {
	client := &mockLambdaClient{pages: [][]string{{"arn:a", "arn:b"}, {"arn:c"}}}
	got, err := ListAllFunctionARNs(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, []string{"arn:a", "arn:b", "arn:c"}, got)
}

func TestFunctionNameFromARN(t *testing.T) {
	name, err := functionNameFromARN("arn:aws:lambda:us-west-2:579777464052:function:aqts-capture-trigger-TEST")
	require.NoError(t, err)
	assert.Equal(t, "aqts-capture-trigger-TEST", name)

	var formatErr *FormatError
	_, err = functionNameFromARN("no-colons-at-all")
	require.ErrorAs(t, err, &formatErr)
}

func TestCreateLambdaWidgets(t *testing.T) {
	const (
		iowARN   = "arn:aws:lambda:us-west-2:579777464052:function:aqts-capture-trigger-TEST"
		otherARN = "arn:aws:lambda:us-west-2:579777464052:function:unrelated-TEST"
	)

	client := &mockLambdaClient{
		pages: [][]string{{iowARN, otherARN}},
		tags: map[string]map[string]string{
			iowARN: iowTags(),
		},
	}
	titles := TitleLookup{"aqts-capture-trigger": {Title: "Capture Trigger"}}
	positioning := NewPositioning()

	widgets, err := CreateLambdaWidgets(context.Background(), client, "us-west-2", "TEST", titles, positioning)
	require.NoError(t, err)
	require.Len(t, widgets, 1)

	w := widgets[0]
	assert.Equal(t, "metric", w.Type)
	assert.Equal(t, 12, w.Width)
	assert.Equal(t, 6, w.Height)
	assert.Equal(t, "Capture Trigger", w.Properties.Title)

	require.Len(t, w.Properties.Metrics, 6)
	assert.Equal(t, []any{"AWS/Lambda", "ConcurrentExecutions", "FunctionName", "aqts-capture-trigger-TEST"}, w.Properties.Metrics[0])

	assert.Equal(t, 0, positioning.X)
	assert.Equal(t, 3, positioning.Y)
}

func TestCreateLambdaWidgetsContinuesAfterQueues(t *testing.T) {
	// The function builder picks up the cursor where the queue builder
	// left it.
	const iowARN = "arn:aws:lambda:us-west-2:579777464052:function:aqts-capture-trigger-TEST"

	client := &mockLambdaClient{
		pages: [][]string{{iowARN}},
		tags:  map[string]map[string]string{iowARN: iowTags()},
	}
	titles := TitleLookup{"aqts-capture-trigger": {Title: "Capture Trigger"}}
	positioning := &Positioning{X: 0, Y: 9, Width: 12, Height: 3, MaxWidth: 12}

	widgets, err := CreateLambdaWidgets(context.Background(), client, "us-west-2", "TEST", titles, positioning)
	require.NoError(t, err)
	require.Len(t, widgets, 1)
	assert.Equal(t, 9, widgets[0].Y)
	assert.Equal(t, 12, positioning.Y)
}

func TestCreateLambdaWidgetsListError(t *testing.T) {
	client := &mockLambdaClient{listErr: errors.New("throttled")}
	_, err := CreateLambdaWidgets(context.Background(), client, "us-west-2", "TEST", TitleLookup{}, NewPositioning())
	assert.ErrorContains(t, err, "listing functions")
}

func TestCreateLambdaWidgetsMissingTitle(t *testing.T) {
	const iowARN = "arn:aws:lambda:us-west-2:579777464052:function:aqts-capture-trigger-TEST"

	client := &mockLambdaClient{
		pages: [][]string{{iowARN}},
		tags:  map[string]map[string]string{iowARN: iowTags()},
	}

	_, err := CreateLambdaWidgets(context.Background(), client, "us-west-2", "TEST", TitleLookup{}, NewPositioning())

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "aqts-capture-trigger", lookupErr.Name)
}
