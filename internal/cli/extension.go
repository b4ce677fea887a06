package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/uisx-labs/uisx/internal/extension"
	"github.com/uisx-labs/uisx/internal/registry"
)

var extensionTypeFilter string

func init() {
	extensionListCmd.Flags().StringVar(&extensionTypeFilter, "type", "", "Only list extensions of this type")

	extensionCmd.AddCommand(extensionListCmd)
	extensionCmd.AddCommand(extensionShowCmd)
	extensionCmd.AddCommand(extensionLocateCmd)
	rootCmd.AddCommand(extensionCmd)
}

var extensionCmd = &cobra.Command{
	Use:     "extension",
	Aliases: []string{"ext"},
	Short:   "Inspect the resolved extensions of the app",
}

var extensionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resolved extensions",
	Long: `List every extension of the resolved layer stack.

LAYERS shows the layers that define the extension, lowest first. PATHS is
the lookup order: the most recent override first, the base last.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolve(cmd)
		if err != nil {
			return err
		}

		exts := res.Extensions()
		if extensionTypeFilter != "" {
			exts = res.ByType(extensionTypeFilter)
		}
		if len(exts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No extensions found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TYPE\tNAME\tLAYERS\tPATHS")
		for _, ext := range exts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				ext.Type(), ext.Name(),
				strings.Join(res.Contributors(ext.Type(), ext.Name()), " > "),
				strings.Join(ext.Paths(), ", "))
		}
		return w.Flush()
	},
}

var extensionShowCmd = &cobra.Command{
	Use:   "show <type> <name>",
	Short: "Show an extension and its override chain",
	Example: `  uisx extension show image logo
  uisx ext show theme dark --override ./themes/dark`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolve(cmd)
		if err != nil {
			return err
		}
		ext, err := res.Find(args[0], args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name:  %s\n", ext.Name())
		fmt.Fprintf(out, "Type:  %s\n", ext.Type())
		fmt.Fprintln(out, "Paths:")
		for _, p := range ext.Paths() {
			fmt.Fprintf(out, "  %s\n", p)
		}
		fmt.Fprintf(out, "Base:  %s\n", ext.Base())

		layers := res.Contributors(ext.Type(), ext.Name())
		fmt.Fprintln(out, "Chain:")
		for i, link := range extension.Chain(ext) {
			layer := "?"
			if i < len(layers) {
				layer = layers[i]
			}
			fmt.Fprintf(out, "  %d. [%s] %s\n", i, layer, link)
		}
		return nil
	},
}

var extensionLocateCmd = &cobra.Command{
	Use:   "locate <type> <name> [file]",
	Short: "Find a file through an extension's paths",
	Long: `Find the first match for file under the extension's paths, trying the
most recent override first. Without file, each path is itself a candidate.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolve(cmd)
		if err != nil {
			return err
		}
		ext, err := res.Find(args[0], args[1])
		if err != nil {
			return err
		}

		rel := ""
		if len(args) == 3 {
			rel = args[2]
		}
		loc, err := registry.Locate(ext, rel)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", loc.Path, loc.MIME)
		return nil
	},
}
