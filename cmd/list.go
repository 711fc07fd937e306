package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/services"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var (
	listCategory string
	listFormat   string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List topics, optionally filtered by category",
	Aliases: []string{"ls"},
	Long: `List the topics of the catalog in catalog order.

Categories: all, structural, exterior, interior.
An unknown category lists nothing.

Examples:
  hb list
  hb list --category interior
  hb list -c exterior --format yaml
  hb list --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category (all, structural, exterior, interior)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "Output format (table, yaml, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	filter := listCategory
	if filter == "" {
		filter = appConfig.DefaultFilter
	}
	format := listFormat
	if format == "" {
		format = appConfig.ListFormat
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, services.ListRequest{Filter: filter})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list topics"))
		return err
	}

	logger.Debug("listed topics", zap.String("filter", resp.Filter), zap.Int("total", resp.Total))

	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		data, err := yaml.Marshal(resp.Topics)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return writeSource(out, string(data), "yaml")

	case "json":
		data, err := json.MarshalIndent(resp.Topics, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return writeSource(out, string(data)+"\n", "json")

	case "table":
		fmt.Fprint(out, renderTopicTable(resp))
		return nil

	default:
		return fmt.Errorf("unknown format %q (expected table, yaml or json)", format)
	}
}

// renderTopicTable renders the list view. Equal responses render identically.
func renderTopicTable(resp *services.ListResponse) string {
	var b strings.Builder

	if resp.Total == 0 {
		b.WriteString(ui.FormatWarning("No topics in category: "+resp.Filter) + "\n")
		b.WriteString(ui.FormatInfo("Valid categories:") + "\n")
		b.WriteString(ui.RenderBulletList(domain.Filters()))
		return b.String()
	}

	if resp.Filter == domain.FilterAll {
		b.WriteString(ui.FormatTitle("Topics") + "\n\n")
	} else {
		b.WriteString(ui.FormatTitle(fmt.Sprintf("Topics (category: %s)", resp.Filter)) + "\n\n")
	}

	descWidth := 60
	if appConfig != nil && appConfig.TableWidth > 0 {
		descWidth = appConfig.TableWidth
	}

	table := ui.NewTable(
		ui.Column{Header: "Name", Width: 12},
		ui.Column{Header: "Category", Width: 12},
		ui.Column{Header: "Description", Width: descWidth, Max: descWidth},
		ui.Column{Header: "Icon", Width: 20},
	)

	for _, t := range resp.Topics {
		table.AddRow(t.Name, ui.FormatCategory(string(t.Category)), t.Description, t.Icon)
	}

	b.WriteString(table.Render())
	b.WriteString("\n")
	b.WriteString(ui.FormatMuted(fmt.Sprintf("Total: %d topic(s)", resp.Total)) + "\n")

	return b.String()
}
