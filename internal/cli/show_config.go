// internal/cli/show_config.go
package circuitdiff

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display resolved settings",
}

// showConfigCmd prints the merged configuration (flags > file > defaults).
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the merged configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(getConfig(), "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
