// internal/render/terminal.go
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/circuitdiff/internal/diff"
	"github.com/mwiater/circuitdiff/internal/util"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	circuitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	higherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	lowerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

var terminalHeaders = []string{"Circuit", "Metric", "Main branch", "New code", "% Change"}

// Terminal renders the comparison rows as an ANSI-colored text table for
// console preview. Color direction matches the HTML report: the numerically
// larger value is red, the smaller green.
func Terminal(rows []diff.Row) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.Circuit, row.Metric, row.MainValue, row.NewValue, row.ChangeLabel()})
	}

	widths := make([]int, len(terminalHeaders))
	for i, h := range terminalHeaders {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = util.Max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	for i, h := range terminalHeaders {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	for ri, row := range cells {
		direction := rows[ri].Direction()
		for i, cell := range row {
			text := pad(cell, widths[i])
			switch i {
			case 0:
				text = circuitStyle.Render(text)
			case 2:
				if direction > 0 {
					text = higherStyle.Render(text)
				} else if direction < 0 {
					text = lowerStyle.Render(text)
				}
			case 3:
				if direction < 0 {
					text = higherStyle.Render(text)
				} else if direction > 0 {
					text = lowerStyle.Render(text)
				}
			}
			b.WriteString(text)
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
