package gateway

import (
	"net/url"
	"strconv"
)

// ListParams are the query parameters the catalog list endpoint accepts.
// Zero values are omitted from the query string.
type ListParams struct {
	Keyword      string
	Category     string
	PageNumber   int
	PageSize     int
	Sort         string
	Status       string
	IsNewArrival *bool
}

func (p ListParams) encode() string {
	q := url.Values{}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.PageNumber > 0 {
		q.Set("pageNumber", strconv.Itoa(p.PageNumber))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.IsNewArrival != nil {
		q.Set("isNewArrival", strconv.FormatBool(*p.IsNewArrival))
	}
	return q.Encode()
}
