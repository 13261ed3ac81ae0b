// internal/tui/view.go
// Package tui hosts the interactive viewer for the comparison table.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/circuitdiff/internal/diff"
	"github.com/mwiater/circuitdiff/internal/util"
)

const (
	maxColumnWidth = 40
	maxTableHeight = 20
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type model struct {
	table table.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(util.Min(len(m.table.Rows())+1, util.Max(msg.Height-4, 3)))
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return baseStyle.Render(m.table.View()) + "\n  ↑/↓ scroll · q quit\n"
}

var viewerHeaders = []string{"Circuit", "Metric", "Main branch", "New code", "% Change"}

func tableRows(rows []diff.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, table.Row{
			util.TruncateRunes(row.Circuit, maxColumnWidth),
			util.TruncateRunes(row.Metric, maxColumnWidth),
			util.TruncateRunes(row.MainValue, maxColumnWidth),
			util.TruncateRunes(row.NewValue, maxColumnWidth),
			row.ChangeLabel(),
		})
	}
	return out
}

func tableColumns(rows []table.Row) []table.Column {
	columns := make([]table.Column, len(viewerHeaders))
	for i, h := range viewerHeaders {
		width := len(h)
		for _, row := range rows {
			width = util.Max(width, len([]rune(row[i])))
		}
		columns[i] = table.Column{Title: h, Width: util.Min(width, maxColumnWidth)}
	}
	return columns
}

func newModel(rows []diff.Row) model {
	tRows := tableRows(rows)
	t := table.New(
		table.WithColumns(tableColumns(tRows)),
		table.WithRows(tRows),
		table.WithFocused(true),
		table.WithHeight(util.Min(len(tRows)+1, maxTableHeight)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return model{table: t}
}

// Run opens the interactive table over the changed rows and blocks until the
// user quits.
func Run(rows []diff.Row) error {
	_, err := tea.NewProgram(newModel(rows)).Run()
	return err
}
