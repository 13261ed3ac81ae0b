// internal/tui/view_test.go
package tui

import (
	"testing"

	"github.com/mwiater/circuitdiff/internal/diff"
)

func sampleRows() []diff.Row {
	return []diff.Row{
		{Circuit: "DepositCircuit", Metric: "proof size", MainValue: "10KB", NewValue: "20KB", HasMain: true, HasNew: true},
		{Circuit: "WithdrawCircuit", Metric: "gates", MainValue: "4096", HasMain: true},
	}
}

func TestTableRowsCarryChangeLabels(t *testing.T) {
	t.Parallel()

	rows := tableRows(sampleRows())
	if len(rows) != 2 {
		t.Fatalf("expected 2 table rows, got %d", len(rows))
	}
	if rows[0][4] != "+100.00%" {
		t.Fatalf("change cell: got %q", rows[0][4])
	}
	if rows[1][4] != "N/A" {
		t.Fatalf("one-sided change cell: got %q", rows[1][4])
	}
	if rows[1][3] != "" {
		t.Fatalf("absent side must be empty, got %q", rows[1][3])
	}
}

func TestTableColumnsFitContent(t *testing.T) {
	t.Parallel()

	columns := tableColumns(tableRows(sampleRows()))
	if len(columns) != 5 {
		t.Fatalf("expected 5 columns, got %d", len(columns))
	}
	// "WithdrawCircuit" is wider than the "Circuit" header.
	if columns[0].Width != len("WithdrawCircuit") {
		t.Fatalf("circuit column width: got %d", columns[0].Width)
	}
	// Header remains the floor for narrow content.
	if columns[4].Width < len("% Change") {
		t.Fatalf("change column narrower than header: %d", columns[4].Width)
	}
}

func TestTableColumnsCapWidth(t *testing.T) {
	t.Parallel()

	long := diff.Row{
		Circuit:  "ExtremelyLongCircuitNameThatWouldBlowUpTheLayoutIfUncapped",
		Metric:   "gates",
		NewValue: "1",
		HasNew:   true,
	}
	columns := tableColumns(tableRows([]diff.Row{long}))
	if columns[0].Width > maxColumnWidth {
		t.Fatalf("column width %d exceeds cap", columns[0].Width)
	}
}

func TestNewModelHeightBounded(t *testing.T) {
	t.Parallel()

	var many []diff.Row
	for i := 0; i < 50; i++ {
		many = append(many, diff.Row{Circuit: "C", Metric: string(rune('a' + i%26)), MainValue: "1", HasMain: true})
	}
	m := newModel(many)
	if got := m.table.Height(); got > maxTableHeight {
		t.Fatalf("table height %d exceeds cap", got)
	}
}
