// internal/cli/view.go
package circuitdiff

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/circuitdiff/internal/appconfig"
	"github.com/mwiater/circuitdiff/internal/tui"
)

type viewOptions struct {
	mainPath    string
	currentPath string
}

var viewOpts viewOptions

// viewCmd opens the changed rows in an interactive terminal table instead of
// writing a file.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the diff table interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if !cmd.Flags().Changed("main") && cfg.MainReport != "" {
			viewOpts.mainPath = cfg.MainReport
		}
		if !cmd.Flags().Changed("current") && cfg.CurrentReport != "" {
			viewOpts.currentPath = cfg.CurrentReport
		}

		rows, err := compareReports(viewOpts.mainPath, viewOpts.currentPath, cfg.Markers())
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			cmd.Println(emptyResult("No differences found."))
			return nil
		}
		return tui.Run(rows)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewOpts.mainPath, "main", appconfig.DefaultMainReport, "Path to the main-branch report")
	viewCmd.Flags().StringVar(&viewOpts.currentPath, "current", appconfig.DefaultCurrentReport, "Path to the current-branch report")

	rootCmd.AddCommand(viewCmd)
}
