package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/uisx-labs/uisx/internal/manifest"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <app-dir|app.yaml>",
	Short: "Validate an app manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			path = filepath.Join(path, manifest.FileName)
		}

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid.\n", path)
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue)
		}
		return fmt.Errorf("%s: %d issue(s)", path, len(result.Issues))
	},
}
