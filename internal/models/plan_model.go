package models

import (
	"strings"
	"time"

	"photoevent-admin-go/internal/timeutil"
)

// Canonical billing durations for subscription plans. Older revisions of the
// authoring form wrote several spellings for the six-month duration; those
// are folded into DurationSixMonth on read and on write.
const (
	DurationMonthly  = "monthly"
	DurationSixMonth = "six-month"
	DurationYearly   = "yearly"
)

// Plan represents a subscription plan document.
type Plan struct {
	ID          string    `json:"id" firestore:"-"` // Document ID, auto-generated
	Name        string    `json:"name" firestore:"name"`
	Price       float64   `json:"price" firestore:"price"`
	Duration    string    `json:"duration" firestore:"duration"`
	Ideal       string    `json:"ideal" firestore:"ideal"`
	Storage     string    `json:"storage,omitempty" firestore:"storage"`
	Features    []string  `json:"features" firestore:"features"`
	MostPopular bool      `json:"mostPopular" firestore:"mostPopular"`
	IsActive    bool      `json:"isActive" firestore:"isActive"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// CanonicalDuration folds the legacy duration spellings into the canonical
// enumeration. Unknown values are passed through lowercased so they remain
// visible in the UI rather than being silently dropped.
func CanonicalDuration(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case DurationMonthly, "month", "1-month":
		return DurationMonthly
	case DurationSixMonth, "half-year", "halfyear", "6-month", "half_year":
		return DurationSixMonth
	case DurationYearly, "annual", "year", "12-month":
		return DurationYearly
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// TrimFeatures drops empty and whitespace-only entries while preserving the
// original order of the remaining features.
func TrimFeatures(features []string) []string {
	out := []string{}
	for _, f := range features {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// PlanFromDoc normalizes a raw subscription plan document into a Plan.
// Features is always non-nil and the duration is canonicalized.
func PlanFromDoc(id string, data map[string]interface{}) *Plan {
	plan := &Plan{
		ID:          id,
		Name:        docString(data, "name"),
		Price:       docNumber(data, "price"),
		Duration:    CanonicalDuration(docString(data, "duration")),
		Ideal:       docString(data, "ideal"),
		Storage:     docString(data, "storage"),
		Features:    docStringSlice(data, "features"),
		MostPopular: docBool(data, "mostPopular"),
		IsActive:    docBool(data, "isActive"),
	}

	if t, ok := timeutil.Parse(data["createdAt"]); ok {
		plan.CreatedAt = t
	}
	if t, ok := timeutil.Parse(data["updatedAt"]); ok {
		plan.UpdatedAt = t
	}

	return plan
}

// PlanSearchFields returns the free-text searchable fields of a plan.
func PlanSearchFields(p *Plan) []string {
	return []string{p.Name, p.Ideal, p.Duration, p.Storage}
}

// PlanSortKey maps a column accessor to its sortable value.
func PlanSortKey(p *Plan, column string) (interface{}, bool) {
	switch column {
	case "name":
		return p.Name, true
	case "price":
		return p.Price, true
	case "duration":
		return p.Duration, true
	case "ideal":
		return p.Ideal, true
	case "storage":
		return p.Storage, true
	case "mostPopular":
		return p.MostPopular, true
	case "isActive":
		return p.IsActive, true
	case "createdAt":
		return p.CreatedAt, true
	}
	return nil, false
}
