package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/hb-cli/internal/core/services"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var searchOpen bool

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Aliases: []string{"s", "find"},
	Short:   "Search topics by name, description or category",
	Long: `Search the catalog for topics whose name, description or category contains
the query. Matching is case-insensitive and ignores surrounding whitespace.

With --open, the first result is shown in the detail view, the same way
pressing Enter in the browser does.

Examples:
  hb search kitchen
  hb search "energy efficient"
  hb search exterior --open`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchOpen, "open", "o", false, "Open the detail view of the first result")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := searchService.Search(ctx, services.SearchRequest{Query: joinArgs(args)})
	if err != nil {
		fmt.Println(ui.FormatError("Search failed"))
		return err
	}

	logger.Debug("search",
		zap.String("query", resp.Query),
		zap.Stringer("status", resp.Status),
		zap.Int("total", resp.Total),
	)

	out := cmd.OutOrStdout()
	switch resp.Status {
	case services.SearchNoQuery:
		return nil

	case services.SearchNoResults:
		fmt.Fprintln(out, ui.FormatError(services.NoResultsMessage))
		return nil
	}

	if searchOpen {
		return showDetail(out, resp.First().Name)
	}

	writeSearchResults(out, resp)
	return nil
}

func writeSearchResults(out io.Writer, resp *services.SearchResponse) {
	fmt.Fprintln(out, ui.FormatTitle(fmt.Sprintf("Results for '%s' (%d)", resp.Query, resp.Total)))
	fmt.Fprintln(out)

	items := make([]string, 0, len(resp.Topics))
	for _, t := range resp.Topics {
		items = append(items, fmt.Sprintf("%s %s\n     %s",
			renderHighlight(t.Name, resp.Query),
			ui.FormatMuted("["+string(t.Category)+"]"),
			renderHighlight(t.Description, resp.Query),
		))
	}
	fmt.Fprint(out, ui.RenderNumberedList(items))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatTip("Open a topic with: hb detail \""+resp.First().Name+"\""))
}
