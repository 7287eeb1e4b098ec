// Package listquery implements the deterministic list pipeline behind every
// table screen: free-text filter, column sort, page slice, applied in that
// order over a fully-loaded collection.
package listquery

import (
	"sort"
	"strings"
	"time"
)

// Sort directions.
const (
	Asc  = "asc"
	Desc = "desc"
)

// DefaultPageSize matches the first entry of the table page-size selector.
const DefaultPageSize = 10

// Params are the four inputs of the list pipeline. The visible page is a
// pure function of (collection, Params).
type Params struct {
	Query      string
	SortColumn string
	Direction  string
	Page       int
	PageSize   int
}

// Normalize clamps page and page size to usable values.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.Direction != Desc {
		p.Direction = Asc
	}
	return p
}

// Result is one computed page plus the filtered total for pagination UI.
type Result[T any] struct {
	Records  []T `json:"records"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Apply runs filter, stable sort and page slice. searchFields yields the
// free-text searchable fields of a record; sortKey resolves a column
// accessor to a comparable value (ok=false leaves relative order intact).
// The returned page never exceeds PageSize.
func Apply[T any](items []T, params Params, searchFields func(T) []string, sortKey func(T, string) (interface{}, bool)) Result[T] {
	params = params.Normalize()

	filtered := filter(items, params.Query, searchFields)
	if params.SortColumn != "" && sortKey != nil {
		sortRecords(filtered, params.SortColumn, params.Direction, sortKey)
	}

	start := (params.Page - 1) * params.PageSize
	end := start + params.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result[T]{
		Records:  filtered[start:end],
		Total:    len(filtered),
		Page:     params.Page,
		PageSize: params.PageSize,
	}
}

// filter keeps records where any searchable field contains the query as a
// case-insensitive substring. An empty query matches everything.
func filter[T any](items []T, query string, searchFields func(T) []string) []T {
	out := make([]T, 0, len(items))
	if query == "" || searchFields == nil {
		return append(out, items...)
	}
	needle := strings.ToLower(query)
	for _, item := range items {
		for _, field := range searchFields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// sortRecords sorts in place. Stability is required: ties keep their
// incoming order so repeated renders are deterministic.
func sortRecords[T any](items []T, column, direction string, sortKey func(T, string) (interface{}, bool)) {
	sort.SliceStable(items, func(i, j int) bool {
		a, aok := sortKey(items[i], column)
		b, bok := sortKey(items[j], column)
		if !aok || !bok {
			return false
		}
		cmp := compare(a, b)
		if direction == Desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// compare orders two sort-key values of the same accessor. Plain `<`/`>`
// semantics, not locale-aware collation.
func compare(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0
		}
		return strings.Compare(av, bv)
	case bool:
		bv, ok := b.(bool)
		if !ok || av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0
		}
		return av.Compare(bv)
	default:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if !aok || !bok {
			return 0
		}
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
