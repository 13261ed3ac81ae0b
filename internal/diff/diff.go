// internal/diff/diff.go
// Package diff aligns two parsed report tables and formats the rows whose
// values changed between the main branch and the code under review.
package diff

import (
	"github.com/mwiater/circuitdiff/internal/report"
)

// Row is one (circuit, metric) key whose values differ between the two
// reports. A side that is absent from its report has the matching Has flag
// unset and an empty value.
type Row struct {
	Circuit   string
	Metric    string
	MainValue string
	NewValue  string
	HasMain   bool
	HasNew    bool
}

type rowKey struct {
	circuit string
	metric  string
}

// Compare outer-joins the two record tables on (circuit, metric) and keeps
// the keys whose values differ as strings. A key present on one side only is
// always kept. Row order follows the main table, then keys that exist only in
// the current report. Duplicate keys within a table resolve first-wins.
func Compare(main, current []report.Record) []Row {
	currentValues := make(map[rowKey]string, len(current))
	for _, rec := range current {
		k := rowKey{rec.Circuit, rec.Metric}
		if _, ok := currentValues[k]; !ok {
			currentValues[k] = rec.Value
		}
	}

	var rows []Row
	seen := make(map[rowKey]bool, len(main))
	for _, rec := range main {
		k := rowKey{rec.Circuit, rec.Metric}
		if seen[k] {
			continue
		}
		seen[k] = true

		newValue, hasNew := currentValues[k]
		if hasNew && newValue == rec.Value {
			continue
		}
		rows = append(rows, Row{
			Circuit:   rec.Circuit,
			Metric:    rec.Metric,
			MainValue: rec.Value,
			NewValue:  newValue,
			HasMain:   true,
			HasNew:    hasNew,
		})
	}

	for _, rec := range current {
		k := rowKey{rec.Circuit, rec.Metric}
		if seen[k] {
			continue
		}
		seen[k] = true
		rows = append(rows, Row{
			Circuit:  rec.Circuit,
			Metric:   rec.Metric,
			NewValue: rec.Value,
			HasNew:   true,
		})
	}
	return rows
}
