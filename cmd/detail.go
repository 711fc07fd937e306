package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/hb-cli/internal/adapters/render"
	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var (
	detailHTML     bool
	detailSave     bool
	detailCopyLink bool
)

// detailCmd represents the detail command
var detailCmd = &cobra.Command{
	Use:     "detail [name]",
	Aliases: []string{"show", "open"},
	Short:   "Show the detail view of a topic",
	Long: `Show the detail view of a topic: overview, key considerations,
getting started, a pro tip and the link to the detailed guide.

The name must match a topic exactly. A topic link such as
sections/living-room/index.html is accepted too. Unknown names show nothing.
Without a name, an interactive fuzzy finder lets you pick a topic.

Examples:
  hb detail Kitchen
  hb detail "Living Room" --html > living-room.html
  hb detail sections/roof/index.html
  hb detail Garage --save
  hb detail --copy-link`,
	RunE: runDetail,
}

func init() {
	detailCmd.Flags().BoolVar(&detailHTML, "html", false, "Print the detail view as an HTML document")
	detailCmd.Flags().BoolVar(&detailSave, "save", false, "Save the HTML guide to the cache and open it")
	detailCmd.Flags().BoolVar(&detailCopyLink, "copy-link", false, "Copy the detailed guide link to the clipboard")
}

func runDetail(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()

	name := joinArgs(args)
	if name == "" {
		topics, err := topicCatalog.Topics(ctx)
		if err != nil {
			return fmt.Errorf("failed to load topics: %w", err)
		}

		picked, err := pickTopic(topics)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to pick topic: %w", err)
		}
		name = picked.Name
	} else if strings.Contains(name, "/") {
		topic, err := detailService.ResolveLink(ctx, name)
		if err != nil {
			return err
		}
		if topic == nil {
			logger.Debug("link resolves to no topic", zap.String("link", name))
			return nil
		}
		name = topic.Name
	}

	detail, err := detailService.Open(ctx, name)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to open topic"))
		return err
	}
	if detail == nil {
		logger.Debug("no topic with that name", zap.String("name", name))
		return nil
	}

	if detailCopyLink {
		return copyLink(out, systemClipboard, detail.Link)
	}

	if detailHTML || detailSave {
		page, err := render.NewHTMLRenderer(true).Render(*detail)
		if err != nil {
			return err
		}
		if detailSave {
			return saveGuide(out, *detail, page)
		}
		return writeSource(out, page, "html")
	}

	return writeDetail(out, *detail)
}

// saveGuide writes the HTML guide to the cache and opens it
func saveGuide(out io.Writer, detail domain.Detail, page string) error {
	if err := appDirs.Initialize(); err != nil {
		return err
	}

	path := appDirs.GetCachePath(domain.GenerateSlug(detail.Name) + ".html")
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to save guide: %w", err)
	}
	fmt.Fprintln(out, ui.FormatSuccess("Guide saved to "+path))

	if err := OpenFile(path); err != nil {
		fmt.Fprintln(out, ui.FormatWarning(err.Error()))
	}
	return nil
}

// showDetail opens and prints the named topic, doing nothing for unknown names
func showDetail(out io.Writer, name string) error {
	detail, err := detailService.Open(getContext(), name)
	if err != nil {
		return err
	}
	if detail == nil {
		return nil
	}
	return writeDetail(out, *detail)
}

func writeDetail(out io.Writer, detail domain.Detail) error {
	renderer, err := newDetailRenderer(0)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(detail)
	if err != nil {
		return err
	}

	fmt.Fprint(out, rendered)
	return nil
}

// newDetailRenderer creates the terminal renderer for the configured theme
func newDetailRenderer(width int) (*render.TerminalRenderer, error) {
	theme := "auto"
	if appConfig != nil {
		theme = appConfig.ColorTheme
		if width <= 0 && appConfig.TableWidth > 0 {
			width = appConfig.TableWidth
		}
	}
	return render.NewTerminalRenderer(theme, width)
}

// guideURL joins the configured site base URL to a topic link
func guideURL(link string) string {
	if appConfig == nil || appConfig.SiteBaseURL == "" {
		return link
	}
	return strings.TrimRight(appConfig.SiteBaseURL, "/") + "/" + strings.TrimLeft(link, "/")
}

func copyLink(out io.Writer, cb ports.Clipboard, link string) error {
	url := guideURL(link)
	if err := cb.WriteAll(url); err != nil {
		fmt.Fprintln(out, ui.FormatWarning("Could not copy link: "+err.Error()))
		fmt.Fprintln(out, url)
		return nil
	}
	fmt.Fprintln(out, ui.FormatSuccess("Copied to clipboard: "+url))
	return nil
}

// findTopic runs the interactive finder and returns the chosen index
var findTopic = func(topics []domain.Topic, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error) {
	return fuzzyfinder.Find(topics, itemFunc, opts...)
}

// pickTopic lets the user choose a topic with the fuzzy finder
func pickTopic(topics []domain.Topic) (*domain.Topic, error) {
	idx, err := findTopic(
		topics,
		func(i int) string {
			return topics[i].Name
		},
		fuzzyfinder.WithPromptString("topic> "),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			t := topics[i]

			var s strings.Builder
			s.WriteString(fmt.Sprintf("%s\n", ui.StyleBold.Render(t.Name)))
			s.WriteString(fmt.Sprintf("Category: %s\n\n", t.Category))
			s.WriteString(ui.StyleHeader.Render("Overview") + "\n")
			s.WriteString(t.Description + "\n\n")
			s.WriteString(ui.StyleMuted.Render(t.Link))
			return s.String()
		}),
	)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(topics) {
		return nil, fmt.Errorf("finder returned index %d out of range", idx)
	}
	return &topics[idx], nil
}
