package dashboard

import "fmt"

// LookupError reports an eligible asset whose tier-agnostic name has no
// entry in the title lookup table. This means the table has drifted from
// what is deployed and an operator needs to add the entry; the run fails
// rather than publishing a partial dashboard.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no dashboard title configured for asset %q", e.Name)
}

// FormatError reports a resource identifier the builder cannot derive a
// name from.
type FormatError struct {
	Identifier string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed resource identifier %q", e.Identifier)
}
