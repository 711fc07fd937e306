package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/hb-cli/internal/adapters/chart"
	"github.com/kamal-hamza/hb-cli/internal/core/services"
	"github.com/kamal-hamza/hb-cli/pkg/counter"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var (
	statsChart     string
	statsNoAnimate bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Show how many topics and categories the guide covers, with a count per category.

The numbers count up from zero when printed to a terminal. Use --no-animate
to print the final values straight away.

Examples:
  hb stats
  hb stats --no-animate
  hb stats --chart topics.html`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "Write a bar chart of topics per category to this HTML file")
	statsCmd.Flags().BoolVar(&statsNoAnimate, "no-animate", false, "Print final values without the count-up animation")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := statsService.Execute(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to compute statistics"))
		return err
	}

	out := cmd.OutOrStdout()
	stats := append(append([]services.Stat{}, resp.Stats...), resp.ByCategory...)

	if statsNoAnimate || !isTerminal(out) {
		writeStats(out, stats)
	} else {
		m := newStatsModel(stats,
			time.Duration(appConfig.CounterDurationMS)*time.Millisecond,
			time.Duration(appConfig.CounterTickMS)*time.Millisecond,
		)
		if _, err := tea.NewProgram(m, tea.WithOutput(out)).Run(); err != nil {
			return fmt.Errorf("error running stats animation: %w", err)
		}
	}

	if statsChart != "" {
		if err := writeStatsChart(statsChart, resp.ByCategory); err != nil {
			fmt.Fprintln(out, ui.FormatError("Failed to write chart"))
			return err
		}
		fmt.Fprintln(out, ui.FormatSuccess("Chart written to "+statsChart))
	}

	return nil
}

func writeStatsChart(path string, stats []services.Stat) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	logger.Debug("writing chart", zap.String("path", path), zap.Int("bars", len(stats)))
	return chart.NewBarChart("Topics by category", "Home Building Guide").Write(f, "Topics", stats)
}

// renderStats renders the stats block. A nil counters slice shows final values.
func renderStats(stats []services.Stat, counters []*counter.Counter) string {
	var b strings.Builder
	b.WriteString(ui.FormatTitle("Guide Statistics") + "\n\n")

	width := 0
	for _, s := range stats {
		if len(s.Label) > width {
			width = len(s.Label)
		}
	}

	for i, s := range stats {
		value := counter.Final(s.Target)
		if counters != nil {
			value = counters[i].Display()
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.StyleBold.Render(fmt.Sprintf("%-*s", width, s.Label)),
			ui.StyleAccent.Render(value),
		))
	}
	return b.String()
}

type counterTickMsg time.Time

// statsModel animates every stat counting up at the same pace
type statsModel struct {
	stats    []services.Stat
	counters []*counter.Counter
	tick     time.Duration
}

func newStatsModel(stats []services.Stat, duration, tick time.Duration) statsModel {
	if tick <= 0 {
		tick = counter.DefaultTick
	}
	counters := make([]*counter.Counter, len(stats))
	for i, s := range stats {
		counters[i] = counter.New(s.Target, duration, tick)
	}
	return statsModel{
		stats:    stats,
		counters: counters,
		tick:     tick,
	}
}

func (m statsModel) Init() tea.Cmd {
	return m.nextTick()
}

func (m statsModel) nextTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return counterTickMsg(t)
	})
}

func (m statsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.finish()
			return m, tea.Quit
		}

	case counterTickMsg:
		if m.step() {
			return m, tea.Quit
		}
		return m, m.nextTick()
	}
	return m, nil
}

// step advances every counter and reports whether all reached their target
func (m statsModel) step() bool {
	done := true
	for _, c := range m.counters {
		if !c.Step() {
			done = false
		}
	}
	return done
}

// finish jumps every counter to its target
func (m statsModel) finish() {
	for _, c := range m.counters {
		for !c.Step() {
		}
	}
}

func (m statsModel) View() string {
	return renderStats(m.stats, m.counters)
}

// writeStats is used when output is not a terminal
func writeStats(out io.Writer, stats []services.Stat) {
	fmt.Fprint(out, renderStats(stats, nil))
}
