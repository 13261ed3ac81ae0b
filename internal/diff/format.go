// internal/diff/format.go
package diff

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// FormattedRow carries the display strings for one changed key. The value and
// change cells hold raw HTML span markup and must not be re-escaped.
type FormattedRow struct {
	Circuit    string
	Metric     string
	MainBranch string
	NewCode    string
	Change     string
}

const changeNotApplicable = "N/A"

// numericValue parses a report value after stripping the KB/MB unit suffixes
// the benchmark emits alongside byte counts.
func numericValue(value string) (float64, bool) {
	trimmed := strings.ReplaceAll(value, "KB", "")
	trimmed = strings.ReplaceAll(trimmed, "MB", "")
	trimmed = strings.TrimSpace(trimmed)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Direction reports which side is numerically larger: +1 when the main value
// is larger, -1 when the current value is larger, 0 when either side is
// missing, non-numeric, or the two are numerically equal.
func (r Row) Direction() int {
	if !r.HasMain || !r.HasNew {
		return 0
	}
	mainV, okMain := numericValue(r.MainValue)
	newV, okNew := numericValue(r.NewValue)
	if !okMain || !okNew {
		return 0
	}
	switch {
	case mainV > newV:
		return 1
	case mainV < newV:
		return -1
	}
	return 0
}

// PercentValue returns (new-old)/old as a percentage. The second return is
// false when either side is missing or non-numeric, or when the baseline is
// zero: a zero baseline must never divide.
func (r Row) PercentValue() (float64, bool) {
	if !r.HasMain || !r.HasNew {
		return 0, false
	}
	oldV, okOld := numericValue(r.MainValue)
	newV, okNew := numericValue(r.NewValue)
	if !okOld || !okNew || oldV == 0 {
		return 0, false
	}
	return (newV - oldV) / oldV * 100, true
}

// ChangeLabel renders the percentage change as signed plain text, or N/A when
// it cannot be computed.
func (r Row) ChangeLabel() string {
	change, ok := r.PercentValue()
	if !ok {
		return changeNotApplicable
	}
	return fmt.Sprintf("%+.2f%%", change)
}

// highlight wraps a value in colored span markup by comparing it numerically
// against the other side: the larger value is always red and the smaller
// green, regardless of which report it came from. Values that do not parse
// after suffix stripping come back escaped but unmodified.
func highlight(value, other string) string {
	escaped := html.EscapeString(value)
	v, okV := numericValue(value)
	o, okO := numericValue(other)
	if !okV || !okO || v == o {
		return escaped
	}
	spanColor := "green"
	if v > o {
		spanColor = "red"
	}
	return fmt.Sprintf(`<span style="color: %s;">%s</span>`, spanColor, escaped)
}

// percentChange renders the change cell with red markup for an increase and
// green otherwise.
func percentChange(row Row) string {
	change, ok := row.PercentValue()
	if !ok {
		return changeNotApplicable
	}
	spanColor := "green"
	if change > 0 {
		spanColor = "red"
	}
	return fmt.Sprintf(`<span style="color: %s;">%+.2f%%</span>`, spanColor, change)
}

// Format produces the display form of each row. A side that is absent from
// its report renders as an empty cell.
func Format(rows []Row) []FormattedRow {
	formatted := make([]FormattedRow, 0, len(rows))
	for _, row := range rows {
		fr := FormattedRow{
			Circuit: row.Circuit,
			Metric:  row.Metric,
			Change:  percentChange(row),
		}
		if row.HasMain {
			fr.MainBranch = highlight(row.MainValue, row.NewValue)
		}
		if row.HasNew {
			fr.NewCode = highlight(row.NewValue, row.MainValue)
		}
		formatted = append(formatted, fr)
	}
	return formatted
}
