// Package page implements the from/size offset windowing used by the list
// endpoints. An absent "from" means no windowing at all.
package page

import (
	"fmt"

	"rentshare/apperr"
)

type Page struct {
	Offset  int
	Limit   int
	Unpaged bool
}

// Unlimited selects the whole result set.
var Unlimited = Page{Unpaged: true}

// New validates from/size. from == nil disables paging; from must be
// non-negative and size positive otherwise.
func New(from *int, size int) (Page, error) {
	if from == nil {
		return Unlimited, nil
	}
	if *from < 0 {
		return Page{}, apperr.Validation("from", fmt.Sprintf("invalid value: %d", *from))
	}
	if size <= 0 {
		return Page{}, apperr.Validation("size", fmt.Sprintf("invalid value: %d", size))
	}
	return Page{Offset: *from, Limit: size}, nil
}

// SQL renders the LIMIT/OFFSET suffix appended to list queries.
func (p Page) SQL() string {
	if p.Unpaged {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", p.Limit, p.Offset)
}

// Window applies the offset/limit to an in-memory slice, for results that
// are filtered after an unpaged fetch.
func Window[T any](p Page, s []T) []T {
	if p.Unpaged {
		return s
	}
	if p.Offset >= len(s) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(s) {
		end = len(s)
	}
	return s[p.Offset:end]
}
