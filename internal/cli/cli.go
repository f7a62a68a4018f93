package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"scholarseek/internal/cache"
	"scholarseek/internal/config"
	"scholarseek/internal/fetch"
	"scholarseek/internal/importer"
	"scholarseek/internal/logger"
	"scholarseek/internal/runner"
	"scholarseek/internal/schedule"
	"scholarseek/internal/source"
	"scholarseek/internal/store"
)

// ScheduleName is the scheduler registration used by the daemon.
const ScheduleName = "scholarship-import"

var (
	flagConfig   string
	flagKeywords string
	flagPages    int
	flagDB       string
	flagFormat   string
	flagVerbose  bool
)

// NewRootCmd creates the root command with its subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scholarseek",
		Short: "Import scholarship listings from external sources",
		Long: `Discovers scholarship and fellowship listings from configured source
sites, deduplicates them, and imports new ones into the content store.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newDaemonCmd())

	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one import cycle now",
		RunE:  runOnce,
	}
	cmd.Flags().StringVar(&flagKeywords, "keywords", "", "Search keywords (overrides config)")
	cmd.Flags().IntVar(&flagPages, "pages", 0, "Result pages per source, 1-5 (overrides config)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last cached run summary",
		RunE:  runStatus,
	}
}

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run imports periodically per the configured interval",
		RunE:  runDaemon,
	}
}

// loadConfig resolves the effective configuration: file (when given), then
// defaults, then flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagKeywords != "" {
		cfg.Keywords = flagKeywords
	}
	if flagPages != 0 {
		cfg.MaxPages = flagPages
	}
	if flagDB != "" {
		cfg.Database = flagDB
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}

	logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr))
	return cfg, nil
}

// buildRunner wires the full pipeline. The returned store must be closed by
// the caller.
func buildRunner(cfg *config.Config) (*runner.Runner, *store.Store, error) {
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}

	agg := source.NewAggregator(fetch.New(), source.Defaults())
	r := runner.New(agg, importer.New(st), cache.New(cfg.Cache))
	return r, st, nil
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	r, st, err := buildRunner(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	summary, err := r.Run(cfg.Keywords, cfg.MaxPages)
	if err != nil {
		return err
	}

	return WriteSummary(cmd.OutOrStdout(), summary, format)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summaries := cache.New(cfg.Cache)
	out := cmd.OutOrStdout()

	if text, ok := summaries.Get(runner.SummaryKey); ok {
		fmt.Fprintf(out, "Last run: %s\n", text)
	} else {
		fmt.Fprintln(out, "No recent run summary available.")
	}
	fmt.Fprintf(out, "Configured interval: %s\n", cfg.Interval)
	return nil
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interval, err := schedule.ParseInterval(cfg.Interval)
	if err != nil {
		return err
	}
	if interval == schedule.Never {
		return fmt.Errorf("interval is %q; nothing to schedule", schedule.Never)
	}

	r, st, err := buildRunner(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	sched := schedule.New()
	sched.Register(ScheduleName, interval, func() {
		if _, err := r.Run(cfg.Keywords, cfg.MaxPages); err != nil {
			logger.Error("scheduled run failed", nil, err)
		}
	})
	defer sched.Clear(ScheduleName)

	if next, ok := sched.NextRun(ScheduleName); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s imports; next run at %s\n",
			interval, next.UTC().Format("2006-01-02 15:04:05 MST"))
	}

	// Block until interrupted.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Fprintln(cmd.OutOrStdout(), "Shutting down.")
	return nil
}
