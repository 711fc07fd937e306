package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var configShowPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the hb configuration file",
	Long: `Open the hb configuration file in $EDITOR.

A running 'hb browse' picks up saved changes immediately.
Use --path to print the location instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowPath, "path", false, "Print the config file path and exit")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configShowPath {
		fmt.Fprintln(out, configPath)
		return nil
	}

	if !configExists(configPath) {
		fmt.Fprintln(out, ui.FormatError("Config file not found at "+configPath))
		fmt.Fprintln(out, ui.FormatInfo("Run 'hb init' to create it"))
		return fmt.Errorf("config file not found at %s", configPath)
	}

	fmt.Fprintln(out, ui.FormatInfo("Opening config: "+configPath))

	c := exec.Command(GetPreferredEditor(), configPath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func configExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
