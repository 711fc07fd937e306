package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/hb-cli/internal/core/services"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest [partial]",
	Short: "Show live search suggestions for a partial query",
	Long: `Show the suggestions the search box offers while typing.

Suggestions appear once the query has at least suggest_min_chars characters
(default 2) and list at most suggest_limit topics (default 5) whose name or
description contains the query. Nothing is printed when the list is hidden,
which makes the output convenient for shell completion.

Examples:
  hb suggest ba
  hb suggest roo`,
	RunE: runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := searchService.Suggest(ctx, services.SuggestRequest{Query: joinArgs(args)})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to compute suggestions"))
		return err
	}

	if !resp.Visible {
		return nil
	}

	out := cmd.OutOrStdout()
	for _, t := range resp.Topics {
		fmt.Fprintln(out, renderHighlight(t.Name, resp.Query))
	}
	return nil
}
