// internal/cli/diff.go
package circuitdiff

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/circuitdiff/internal/appconfig"
	"github.com/mwiater/circuitdiff/internal/diff"
	"github.com/mwiater/circuitdiff/internal/logging"
	"github.com/mwiater/circuitdiff/internal/render"
	"github.com/mwiater/circuitdiff/internal/report"
	"github.com/mwiater/circuitdiff/internal/util"
)

type diffOptions struct {
	mainPath    string
	currentPath string
	outputPath  string
	chartPath   string
	preview     bool
}

var diffOpts diffOptions

var (
	emptyResult = color.New(color.FgYellow).SprintFunc()
	writeStatus = color.New(color.FgGreen).SprintfFunc()
)

// diffCmd runs the full compare pipeline: parse both reports, keep the keys
// that changed, and publish the HTML table.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two benchmark reports and write the HTML diff table",
	Long: `Parse the main-branch and current-branch benchmark reports, align them on
(circuit, metric), and write an HTML table of every value that changed, with
percentage deltas wherever both sides are numeric. When nothing changed, no
file is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		applyDiffConfig(cmd, cfg)

		if cfg.LogFile != "" {
			if err := logging.Init(cfg.LogFile); err != nil {
				return err
			}
			defer logging.Close()
		}

		rows, err := compareReports(diffOpts.mainPath, diffOpts.currentPath, cfg.Markers())
		if err != nil {
			return err
		}

		if cfg.LogFile != "" {
			logging.LogRun(diffOpts.mainPath, diffOpts.currentPath, len(rows))
		}

		if len(rows) == 0 {
			cmd.Println(emptyResult("No differences found."))
			return nil
		}

		if diffOpts.preview {
			fmt.Fprint(cmd.OutOrStdout(), render.Terminal(rows))
		}

		html, err := render.HTML(diff.Format(rows))
		if err != nil {
			return fmt.Errorf("failed generating HTML diff: %w", err)
		}
		if err := util.WriteFile(diffOpts.outputPath, []byte(html)); err != nil {
			return fmt.Errorf("unable to write HTML diff %s: %w", diffOpts.outputPath, err)
		}

		if diffOpts.chartPath != "" {
			if err := render.Chart(rows, diffOpts.chartPath); err != nil {
				return fmt.Errorf("failed generating chart %s: %w", diffOpts.chartPath, err)
			}
			cmd.Println(writeStatus("Chart written to '%s'", diffOpts.chartPath))
		}

		cmd.Println(writeStatus("Diff generated in '%s'", diffOpts.outputPath))
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffOpts.mainPath, "main", appconfig.DefaultMainReport, "Path to the main-branch report")
	diffCmd.Flags().StringVar(&diffOpts.currentPath, "current", appconfig.DefaultCurrentReport, "Path to the current-branch report")
	diffCmd.Flags().StringVar(&diffOpts.outputPath, "output", appconfig.DefaultOutputPath, "Destination HTML path")
	diffCmd.Flags().StringVar(&diffOpts.chartPath, "chart", "", "Optional path for a PNG chart of the percentage changes")
	diffCmd.Flags().BoolVar(&diffOpts.preview, "preview", false, "Also print the diff table to the terminal")

	rootCmd.AddCommand(diffCmd)
}

// applyDiffConfig fills unset flags from the merged configuration so the
// command line always wins over the file.
func applyDiffConfig(cmd *cobra.Command, cfg *appconfig.Config) {
	if !cmd.Flags().Changed("main") && cfg.MainReport != "" {
		diffOpts.mainPath = cfg.MainReport
	}
	if !cmd.Flags().Changed("current") && cfg.CurrentReport != "" {
		diffOpts.currentPath = cfg.CurrentReport
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		diffOpts.outputPath = cfg.Output
	}
}

// compareReports parses both inputs and joins them into the changed rows.
// Shared between the diff and view commands.
func compareReports(mainPath, currentPath string, markers []string) ([]diff.Row, error) {
	opts := report.Options{ExcludeMarkers: markers}

	mainRecords, err := report.ParseFile(mainPath, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to read main report %s: %w", mainPath, err)
	}
	currentRecords, err := report.ParseFile(currentPath, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to read current report %s: %w", currentPath, err)
	}

	if DebugEnabled() {
		pp.Println(mainRecords)
		pp.Println(currentRecords)
	}

	return diff.Compare(mainRecords, currentRecords), nil
}
