package listquery

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string
	Name  string
	Email string
	Price float64
	Open  bool
	Added time.Time
}

func recordFields(r record) []string {
	return []string{r.Name, r.Email}
}

func recordKey(r record, column string) (interface{}, bool) {
	switch column {
	case "name":
		return r.Name, true
	case "price":
		return r.Price, true
	case "open":
		return r.Open, true
	case "added":
		return r.Added, true
	}
	return nil, false
}

func sampleRecords() []record {
	return []record{
		{ID: "1", Name: "Wedding Deluxe", Email: "anna@example.com", Price: 30, Open: true, Added: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Birthday Basic", Email: "bob@example.com", Price: 10, Open: false, Added: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Corporate", Email: "carol@example.com", Price: 20, Open: true, Added: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "4", Name: "wedding mini", Email: "dave@example.com", Price: 10, Open: false, Added: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)},
	}
}

func TestApplyFilterIsCaseInsensitiveAnyField(t *testing.T) {
	result := Apply(sampleRecords(), Params{Query: "WEDDING"}, recordFields, recordKey)
	require.Equal(t, 2, result.Total)
	assert.Equal(t, "1", result.Records[0].ID)
	assert.Equal(t, "4", result.Records[1].ID)

	result = Apply(sampleRecords(), Params{Query: "carol@"}, recordFields, recordKey)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "3", result.Records[0].ID)
}

func TestApplyEmptyQueryMatchesAll(t *testing.T) {
	result := Apply(sampleRecords(), Params{}, recordFields, recordKey)
	assert.Equal(t, 4, result.Total)
	assert.Len(t, result.Records, 4)
}

func TestApplySortDirections(t *testing.T) {
	asc := Apply(sampleRecords(), Params{SortColumn: "price", Direction: Asc}, recordFields, recordKey)
	prices := []float64{}
	for _, r := range asc.Records {
		prices = append(prices, r.Price)
	}
	assert.Equal(t, []float64{10, 10, 20, 30}, prices)

	desc := Apply(sampleRecords(), Params{SortColumn: "price", Direction: Desc}, recordFields, recordKey)
	assert.Equal(t, float64(30), desc.Records[0].Price)
}

func TestApplySortIsStableOnTies(t *testing.T) {
	// Two records share price 10; their incoming order (2 before 4) must hold.
	result := Apply(sampleRecords(), Params{SortColumn: "price", Direction: Asc}, recordFields, recordKey)
	assert.Equal(t, "2", result.Records[0].ID)
	assert.Equal(t, "4", result.Records[1].ID)
}

func TestApplySortByTimeAndBool(t *testing.T) {
	byTime := Apply(sampleRecords(), Params{SortColumn: "added", Direction: Desc}, recordFields, recordKey)
	assert.Equal(t, "4", byTime.Records[0].ID)

	byBool := Apply(sampleRecords(), Params{SortColumn: "open", Direction: Asc}, recordFields, recordKey)
	assert.False(t, byBool.Records[0].Open)
	assert.True(t, byBool.Records[3].Open)
}

func TestApplyUnknownSortColumnKeepsOrder(t *testing.T) {
	result := Apply(sampleRecords(), Params{SortColumn: "bogus"}, recordFields, recordKey)
	assert.Equal(t, "1", result.Records[0].ID)
	assert.Equal(t, "4", result.Records[3].ID)
}

func TestApplyPagination(t *testing.T) {
	var records []record
	for i := 1; i <= 25; i++ {
		records = append(records, record{ID: fmt.Sprintf("%02d", i), Name: fmt.Sprintf("Record %02d", i)})
	}

	page1 := Apply(records, Params{Page: 1, PageSize: 10}, recordFields, recordKey)
	require.Len(t, page1.Records, 10)
	assert.Equal(t, "01", page1.Records[0].ID)
	assert.Equal(t, 25, page1.Total)

	page3 := Apply(records, Params{Page: 3, PageSize: 10}, recordFields, recordKey)
	require.Len(t, page3.Records, 5)
	assert.Equal(t, "21", page3.Records[0].ID)

	beyond := Apply(records, Params{Page: 9, PageSize: 10}, recordFields, recordKey)
	assert.Empty(t, beyond.Records)
	assert.Equal(t, 25, beyond.Total)
}

func TestApplyNormalizesBadParams(t *testing.T) {
	result := Apply(sampleRecords(), Params{Page: -3, PageSize: 0, Direction: "sideways"}, recordFields, recordKey)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, DefaultPageSize, result.PageSize)
	assert.Len(t, result.Records, 4)
}

func TestApplyFilterThenSortThenPage(t *testing.T) {
	// Order matters: the page is cut from the filtered, sorted set.
	result := Apply(sampleRecords(), Params{
		Query:      "wedding",
		SortColumn: "price",
		Direction:  Desc,
		Page:       1,
		PageSize:   1,
	}, recordFields, recordKey)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Wedding Deluxe", result.Records[0].Name)
	assert.Equal(t, 2, result.Total)
}

func TestSelectionSurvivesRepagination(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("2")
	sel.Toggle("3")

	// Changing filter, sort or page does not touch the selection.
	_ = Apply(sampleRecords(), Params{Query: "wedding"}, recordFields, recordKey)
	_ = Apply(sampleRecords(), Params{SortColumn: "price", Direction: Desc}, recordFields, recordKey)
	_ = Apply(sampleRecords(), Params{Page: 2, PageSize: 2}, recordFields, recordKey)

	assert.True(t, sel.Has("2"))
	assert.True(t, sel.Has("3"))
	assert.Equal(t, 2, sel.Len())
}

func TestSelectionToggleAndClear(t *testing.T) {
	sel := NewSelection("a", "a", "", "b")
	assert.Equal(t, 2, sel.Len())

	sel.Toggle("a")
	assert.False(t, sel.Has("a"))

	sel.Toggle("c")
	assert.Equal(t, []string{"b", "c"}, sel.IDs())

	sel.Clear()
	assert.Equal(t, 0, sel.Len())
}

func TestSelectionSelectAllTogglesWhenAllChecked(t *testing.T) {
	sel := NewSelection()
	visible := []string{"1", "2", "3"}

	sel.SelectAll(visible)
	assert.Equal(t, 3, sel.Len())

	// All visible already checked: select-all unchecks them.
	sel.SelectAll(visible)
	assert.Equal(t, 0, sel.Len())

	// Partially checked: select-all completes the set.
	sel.Toggle("1")
	sel.SelectAll(visible)
	assert.Equal(t, 3, sel.Len())
}
