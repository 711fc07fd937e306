package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove exported guides from the cache",
	Long: `Remove the HTML guides written by 'hb detail --save'.

Examples:
  hb clean`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprint(out, ui.StyleWarning.Render("Cleaning cache... "))
	if err := appDirs.CleanCache(); err != nil {
		fmt.Fprintln(out, ui.FormatError("Failed"))
		return err
	}

	fmt.Fprintln(out, ui.FormatSuccess("Done"))
	fmt.Fprintln(out, ui.FormatMuted("Removed exported guides from "+appDirs.CachePath))
	return nil
}
