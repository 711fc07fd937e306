package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/hb-cli/pkg/config"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the hb configuration file",
	Long: `Create the hb configuration file with every setting at its default value.

The file is written to $XDG_CONFIG_HOME/hb/config.yaml (or the path given
with --config). An existing file is left untouched unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if err := appDirs.Initialize(); err != nil {
		fmt.Fprintln(out, ui.FormatError("Failed to create directories"))
		return err
	}

	if configExists(configPath) && !initForce {
		fmt.Fprintln(out, ui.FormatWarning("Config already exists"))
		fmt.Fprintln(out, ui.FormatMuted("Location: "+configPath))
		fmt.Fprintln(out, ui.FormatInfo("Use --force to reset it to the defaults"))
		return nil
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		fmt.Fprintln(out, ui.FormatError("Failed to write config"))
		return err
	}

	fmt.Fprintln(out, ui.FormatSuccess("Config created"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderKeyValue("Config", configPath))
	fmt.Fprintln(out, ui.RenderKeyValue("Cache", appDirs.CachePath))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatInfo("Next steps:"))
	fmt.Fprint(out, ui.RenderNumberedList([]string{
		"Browse the guide: hb browse",
		"List interior topics: hb list -c interior",
		"Search: hb search kitchen",
	}))

	return nil
}
