// Package dashboard builds CloudWatch dashboard widgets for the IOW
// aqts-capture ETL assets in one account/region. Builders enumerate a
// resource type through the AWS APIs, filter to the deploy tier and the
// wma:organization=IOW tag, and emit one positioned metric widget per
// matching asset.
package dashboard

// Widget is a single positioned entry in a CloudWatch dashboard body.
type Widget struct {
	Type       string           `json:"type"`
	X          int              `json:"x"`
	Y          int              `json:"y"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Properties WidgetProperties `json:"properties"`
}

// WidgetProperties is the metric-widget payload. Metrics uses the
// dashboard body's heterogeneous array-of-arrays form, e.g.
//
//	["AWS/SQS", "NumberOfMessagesSent", "QueueName", "my-queue", {"stat": "Sum"}]
type WidgetProperties struct {
	Metrics [][]any `json:"metrics"`
	View    string  `json:"view"`
	Stacked bool    `json:"stacked"`
	Region  string  `json:"region"`
	Period  int     `json:"period"`
	Title   string  `json:"title"`
	Stat    string  `json:"stat"`
}

// TitleEntry holds the display metadata for one asset.
type TitleEntry struct {
	Title string `yaml:"title" json:"title"`
}

// TitleLookup maps a tier-agnostic asset name to its display metadata.
// The table is maintained alongside the deployed assets; an eligible asset
// with no entry means the table has drifted and the run fails.
type TitleLookup map[string]TitleEntry

const (
	widgetTypeMetric = "metric"
	viewTimeSeries   = "timeSeries"
	metricPeriod     = 60
	metricStat       = "Average"
)

// Tag that marks an asset as belonging to IOW.
const (
	organizationTagKey = "wma:organization"
	organizationTag    = "IOW"
)

// listing page size; MaxResults must be set for the AWS list calls to
// return a pagination token at all.
const listPageSize = 10
