// Package query models the filter/pagination intent driving a fetch
// against the remote transaction store.
package query

import (
	"net/url"
	"strconv"
)

// PageSize is the fixed number of transactions per list page.
const PageSize = 10

// All is the sentinel for an unconstrained type or category filter. It
// means "no constraint" and must never be forwarded to the store as a
// literal value.
const All = "all"

// Time ranges understood by the dashboard.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// Params is a pure value object. The With* methods return a modified
// copy; every change except a page navigation resets the page to 1 so a
// stale page number can never point past the end of a newly filtered
// result set.
type Params struct {
	Page     int
	Search   string
	Type     string
	Category string
	Range    string
}

// New returns list-view defaults: first page, no filters.
func New() Params {
	return Params{Page: 1, Type: All, Category: All}
}

// Window returns dashboard params: a time-range scoped, unpaginated
// fetch.
func Window(timeRange string) Params {
	return Params{Type: All, Category: All, Range: timeRange}
}

func (p Params) WithPage(page int) Params {
	if page < 1 {
		page = 1
	}
	p.Page = page
	return p
}

func (p Params) WithSearch(search string) Params {
	p.Search = search
	p.Page = 1
	return p
}

func (p Params) WithType(typeFilter string) Params {
	p.Type = typeFilter
	p.Page = 1
	return p
}

func (p Params) WithCategory(category string) Params {
	p.Category = category
	p.Page = 1
	return p
}

func (p Params) WithRange(timeRange string) Params {
	p.Range = timeRange
	p.Page = 1
	return p
}

// Values encodes the params for the outgoing request. Sentinel and empty
// values are omitted rather than sent literally, and pagination fields
// are only present for paginated (list) fetches.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
		v.Set("limit", strconv.Itoa(PageSize))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Type != "" && p.Type != All {
		v.Set("type", p.Type)
	}
	if p.Category != "" && p.Category != All {
		v.Set("category", p.Category)
	}
	if p.Range != "" {
		v.Set("timeRange", p.Range)
	}
	return v
}
