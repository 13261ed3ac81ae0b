// internal/render/html.go
// Package render turns comparison rows into their output forms: the HTML
// diff table, an ANSI terminal preview, and an optional chart.
package render

import (
	"bytes"
	"html/template"

	"github.com/mwiater/circuitdiff/internal/diff"
)

type diffReportData struct {
	Title string
	Rows  []diffReportRow
}

type diffReportRow struct {
	Circuit    string
	Metric     string
	MainBranch template.HTML
	NewCode    template.HTML
	Change     template.HTML
}

// HTML renders the comparison table as a standalone UTF-8 document. Value and
// change cells carry their own span markup from the differ; circuit and
// metric names are escaped by the template.
func HTML(rows []diff.FormattedRow) (string, error) {
	data := diffReportData{
		Title: "Circuit metrics comparison",
		Rows:  make([]diffReportRow, 0, len(rows)),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, diffReportRow{
			Circuit:    row.Circuit,
			Metric:     row.Metric,
			MainBranch: template.HTML(row.MainBranch),
			NewCode:    template.HTML(row.NewCode),
			Change:     template.HTML(row.Change),
		})
	}

	var buf bytes.Buffer
	if err := diffReportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var diffReportTemplate = template.Must(template.New("comparison-diff").Parse(diffReportTemplateHTML))

const diffReportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: sans-serif; margin: 2rem; color: #0F172A; }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #E2E8F0; padding: 0.35rem 0.75rem; text-align: left; }
    th { background-color: #F1F5F9; }
  </style>
</head>
<body>
  <table>
    <thead>
      <tr><th>Circuit</th><th>Metric</th><th>Main branch</th><th>New code</th><th>% Change</th></tr>
    </thead>
    <tbody>
{{- range .Rows }}
      <tr><td>{{ .Circuit }}</td><td>{{ .Metric }}</td><td>{{ .MainBranch }}</td><td>{{ .NewCode }}</td><td>{{ .Change }}</td></tr>
{{- end }}
    </tbody>
  </table>
</body>
</html>
`
