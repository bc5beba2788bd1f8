package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iow-ops/cloudwatch-monitoring/dashboard"
)

// Lookups holds the per-resource-type title tables, keyed by
// tier-agnostic asset name. The tables are maintained by hand alongside
// the deployed assets: every IOW asset in a tier must have an entry or
// the dashboard run fails.
type Lookups struct {
	SQSQueues       dashboard.TitleLookup `yaml:"sqs_queues"`
	LambdaFunctions dashboard.TitleLookup `yaml:"lambda_functions"`
}

//go:embed lookups.yml
var defaultLookups []byte

// DefaultLookups returns the lookup tables compiled into the binary.
func DefaultLookups() (*Lookups, error) {
	return parseLookups(defaultLookups)
}

// LoadLookups reads lookup tables from a YAML file, for running against
// assets the embedded tables do not know about yet.
func LoadLookups(path string) (*Lookups, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lookup file: %w", err)
	}
	return parseLookups(data)
}

func parseLookups(data []byte) (*Lookups, error) {
	var lookups Lookups
	if err := yaml.Unmarshal(data, &lookups); err != nil {
		return nil, fmt.Errorf("parsing lookup tables: %w", err)
	}
	return &lookups, nil
}
