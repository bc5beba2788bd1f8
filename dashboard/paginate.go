package dashboard

// listAllPages drains a paginated AWS list call. fetch is invoked with the
// continuation token from the previous page (nil on the first call) and
// returns one page of items plus the next token, or nil when the listing
// is exhausted. Items are accumulated in page order; a failed page aborts
// the whole listing. There is no retry here: this is a one-shot reporting
// tool and a visible failure beats a partial dashboard.
func listAllPages(fetch func(token *string) ([]string, *string, error)) ([]string, error) {
	var all []string
	var token *string

	for {
		items, next, err := fetch(token)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if next == nil {
			return all, nil
		}
		token = next
	}
}
