// internal/diff/diff_test.go
package diff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mwiater/circuitdiff/internal/report"
)

func TestCompareIdenticalTablesYieldsNothing(t *testing.T) {
	t.Parallel()

	records := []report.Record{
		{Circuit: "A", Metric: "Gates", Value: "10"},
		{Circuit: "A", Metric: "Size", Value: "42KB"},
		{Circuit: "B", Metric: "Gates", Value: "7"},
	}
	if rows := Compare(records, records); len(rows) != 0 {
		t.Fatalf("expected no rows for identical tables, got %d", len(rows))
	}
}

func TestCompareKeepsChangedValues(t *testing.T) {
	t.Parallel()

	main := []report.Record{
		{Circuit: "A", Metric: "Gates", Value: "10"},
		{Circuit: "A", Metric: "Size", Value: "42KB"},
	}
	current := []report.Record{
		{Circuit: "A", Metric: "Gates", Value: "12"},
		{Circuit: "A", Metric: "Size", Value: "42KB"},
	}

	want := []Row{
		{Circuit: "A", Metric: "Gates", MainValue: "10", NewValue: "12", HasMain: true, HasNew: true},
	}
	if diff := cmp.Diff(want, Compare(main, current)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareKeyMissingInCurrent(t *testing.T) {
	t.Parallel()

	main := []report.Record{{Circuit: "A", Metric: "Gates", Value: "10"}}
	rows := Compare(main, nil)
	want := []Row{
		{Circuit: "A", Metric: "Gates", MainValue: "10", HasMain: true},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareKeyMissingInMain(t *testing.T) {
	t.Parallel()

	current := []report.Record{{Circuit: "A", Metric: "Gates", Value: "10"}}
	rows := Compare(nil, current)
	want := []Row{
		{Circuit: "A", Metric: "Gates", NewValue: "10", HasNew: true},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareOrderFollowsMainThenCurrent(t *testing.T) {
	t.Parallel()

	main := []report.Record{
		{Circuit: "A", Metric: "Gates", Value: "10"},
		{Circuit: "B", Metric: "Gates", Value: "20"},
	}
	current := []report.Record{
		{Circuit: "C", Metric: "Gates", Value: "30"},
		{Circuit: "A", Metric: "Gates", Value: "11"},
		{Circuit: "B", Metric: "Gates", Value: "21"},
	}

	rows := Compare(main, current)
	gotOrder := make([]string, 0, len(rows))
	for _, row := range rows {
		gotOrder = append(gotOrder, row.Circuit)
	}
	wantOrder := []string{"A", "B", "C"}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Fatalf("row order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareDuplicateKeysFirstWins(t *testing.T) {
	t.Parallel()

	main := []report.Record{
		{Circuit: "A", Metric: "Gates", Value: "10"},
		{Circuit: "A", Metric: "Gates", Value: "99"},
	}
	current := []report.Record{
		{Circuit: "A", Metric: "Gates", Value: "11"},
	}

	rows := Compare(main, current)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].MainValue != "10" {
		t.Fatalf("expected first occurrence to win, got %q", rows[0].MainValue)
	}
}
