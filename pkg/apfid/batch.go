package apfid

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ParseAll parses every string in ss. Records that parse are returned in
// input order; failures are collected into a *multierror.Error whose
// entries name the index of the offending input.
func ParseAll(ss []string, opts ...Option) ([]*APFID, error) {
	var (
		result *multierror.Error
		ids    = make([]*APFID, 0, len(ss))
	)

	for i, s := range ss {
		a, err := Parse(s, opts...)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		ids = append(ids, a)
	}

	return ids, result.ErrorOrNil()
}
