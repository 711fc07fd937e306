package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/hb-cli/internal/adapters/catalog"
	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/pkg/config"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your hb installation",
	Long: `Diagnose issues with your hb setup.

Checks for:
  - Configuration file existence and validity
  - Topic catalog integrity (unique names, known categories, matching links)
  - Clipboard support (used by --copy-link and contact)
  - Terminal and editor environment`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := getContext()

	fmt.Fprintln(out, ui.FormatTitle(ui.IconBuild+" HB Doctor"))
	fmt.Fprintln(out)

	failed := 0
	check := func(name string, fn func() error) {
		if !checkStep(out, name, fn) {
			failed++
		}
	}

	// 1. Configuration
	check("Configuration File", func() error {
		if !configExists(configPath) {
			return fmt.Errorf("missing at %s (defaults in use, run 'hb init')", configPath)
		}
		return nil
	})

	check("Configuration Values", func() error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if !slices.Contains(ui.Themes(), cfg.ColorTheme) {
			return fmt.Errorf("unknown color_theme %q (expected one of %s)",
				cfg.ColorTheme, strings.Join(ui.Themes(), ", "))
		}
		return nil
	})

	check("Cache Directory", func() error {
		if _, err := os.Stat(appDirs.CachePath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (created on first export)", appDirs.CachePath)
		}
		return nil
	})

	// 2. Catalog
	check("Topic Catalog", func() error {
		return catalog.NewStaticCatalog().Validate()
	})

	check("Category Coverage", func() error {
		return checkCategoryCoverage(ctx)
	})

	// 3. Environment
	check("Clipboard", func() error {
		if clipboard.Unsupported {
			return fmt.Errorf("no clipboard utility found (install xclip, xsel or wl-clipboard)")
		}
		return nil
	})

	check("Interactive Terminal", func() error {
		if !isTerminal(os.Stdout) {
			return fmt.Errorf("stdout is not a terminal ('hb browse' needs one)")
		}
		return nil
	})

	check("EDITOR Variable", func() error {
		if os.Getenv("EDITOR") == "" {
			return fmt.Errorf("not set (using fallback 'vi')")
		}
		return nil
	})

	fmt.Fprintln(out)
	if failed > 0 {
		fmt.Fprintln(out, ui.FormatWarning(fmt.Sprintf("%d check(s) need attention", failed)))
	} else {
		fmt.Fprintln(out, ui.FormatSuccess("Everything looks good"))
	}
	return nil
}

// checkCategoryCoverage makes sure every filter tab has something to show
func checkCategoryCoverage(ctx context.Context) error {
	topics, err := topicCatalog.Topics(ctx)
	if err != nil {
		return err
	}
	counts := make(map[domain.Category]int)
	for _, t := range topics {
		counts[t.Category]++
	}
	for _, c := range domain.Categories() {
		if counts[c] == 0 {
			return fmt.Errorf("category %q has no topics", c)
		}
	}
	return nil
}

// checkStep runs a check function, prints the result and reports success
func checkStep(out io.Writer, name string, check func() error) bool {
	err := check()
	if err == nil {
		fmt.Fprintf(out, "%s %s\n", ui.StyleSuccess.Render(ui.IconSuccess), name)
		return true
	}
	fmt.Fprintf(out, "%s %s\n", ui.StyleError.Render(ui.IconError), name)
	fmt.Fprintf(out, "    %s\n", ui.StyleMuted.Render(err.Error()))
	return false
}
