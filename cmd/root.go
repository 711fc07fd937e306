package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kamal-hamza/hb-cli/internal/adapters/catalog"
	"github.com/kamal-hamza/hb-cli/internal/adapters/clipboard"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
	"github.com/kamal-hamza/hb-cli/internal/core/services"
	"github.com/kamal-hamza/hb-cli/pkg/appdir"
	"github.com/kamal-hamza/hb-cli/pkg/config"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

var (
	// Global paths and settings
	appDirs    *appdir.Dirs
	appConfig  *config.Config
	configPath string

	// Diagnostic logger, a no-op unless --verbose is set
	logger  = zap.NewNop()
	verbose bool

	// Catalog
	topicCatalog ports.Catalog

	// Services
	listService   *services.ListService
	searchService *services.SearchService
	detailService *services.DetailService
	statsService  *services.StatsService

	// Clipboard
	systemClipboard ports.Clipboard
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hb",
	Short: "HB - A home building topic guide",
	Long: ui.StyleTitle.Render("HB") + " - Home Building Guide\n\n" +
		"Browse, filter and search a catalog of home-construction topics\n" +
		"from foundation to ceilings, right from your terminal.\n\n" +
		"Run without a subcommand to start the configured default action (browse, list or stats).",
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:         runDefaultAction,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable diagnostic logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/hb/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	l, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l

	d, err := appdir.New()
	if err != nil {
		return fmt.Errorf("failed to resolve directories: %w", err)
	}
	appDirs = d
	if configPath == "" {
		configPath = appDirs.ConfigPath
	}

	// init writes the config, so it must not depend on loading one
	if cmd.Name() == "init" {
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load config"))
		fmt.Println(ui.FormatInfo("Check " + configPath + " or run 'hb init' to recreate it"))
		return err
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	logger.Debug("config loaded",
		zap.String("path", configPath),
		zap.String("default_action", cfg.DefaultAction),
		zap.String("default_filter", cfg.DefaultFilter),
	)

	c := catalog.NewStaticCatalog()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid topic catalog: %w", err)
	}

	setupServices(c, cfg)
	systemClipboard = clipboard.NewSystemClipboard()

	return nil
}

// setupServices wires the services against a catalog
func setupServices(c ports.Catalog, cfg *config.Config) {
	topicCatalog = c
	listService = services.NewListService(c)
	searchService = services.NewSearchService(c, services.SearchOptions{
		SuggestMinChars: cfg.SuggestMinChars,
		SuggestLimit:    cfg.SuggestLimit,
	})
	detailService = services.NewDetailService(c)
	statsService = services.NewStatsService(c)
}

// newLogger builds a production zap logger at debug level, or a no-op logger
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zapConfig.Encoding = "console"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapConfig.Build()
}

// runDefaultAction runs the command named by default_action
func runDefaultAction(cmd *cobra.Command, args []string) error {
	logger.Debug("running default action", zap.String("action", appConfig.DefaultAction))

	switch appConfig.DefaultAction {
	case "list":
		return runList(cmd, args)
	case "stats":
		return runStats(cmd, args)
	default:
		return runBrowse(cmd, args)
	}
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
