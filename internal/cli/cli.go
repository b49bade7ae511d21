package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"offsets-finder/internal/config"
	"offsets-finder/internal/detect"
	"offsets-finder/internal/display"
	"offsets-finder/internal/exporter"
	"offsets-finder/internal/filewalker"
	"offsets-finder/internal/gameconfig"
	"offsets-finder/internal/model"
	"offsets-finder/internal/scanner"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries state shared by every command.
type app struct {
	cfg      *config.Config
	verbose  bool
	noColor  bool
	tableDir string
	registry *gameconfig.Registry
}

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:          "ffoffsets",
		Short:        "Find Free Fire field offsets in decompiled class dumps",
		Long:         "Resolves known field offsets from a dump.cs file, either from fixed values or by locating declarations in the dump, and exports them as JSON, C++, Rust or plain text.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", cfg.NoColor, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.tableDir, "tables", cfg.TableDir, "Directory with <variant>.yaml tables overriding the built-in ones")

	rootCmd.AddCommand(a.scanCmd())
	rootCmd.AddCommand(a.detectCmd())
	rootCmd.AddCommand(a.batchCmd())
	rootCmd.AddCommand(a.diffCmd())
	rootCmd.AddCommand(a.variantsCmd())

	return rootCmd
}

// setup applies the log level and loads the offset tables.
func (a *app) setup() error {
	level, err := zerolog.ParseLevel(a.cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if a.verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	registry, err := gameconfig.NewRegistry(a.tableDir)
	if err != nil {
		return fmt.Errorf("load offset tables: %w", err)
	}
	a.registry = registry
	return nil
}

func (a *app) printer(cmd *cobra.Command) *display.Printer {
	palette := display.DefaultPalette()
	if a.noColor {
		palette = display.PlainPalette()
	}
	return display.NewPrinter(cmd.OutOrStdout(), palette)
}

func (a *app) scanCmd() *cobra.Command {
	var game, export, output string

	cmd := &cobra.Command{
		Use:   "scan <dump>",
		Short: "Scan a dump for the offsets of one game variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScan(cmd, args[0], game, export, output)
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", a.cfg.Game, "Game variant: auto, freefire (ff), max or tela")
	cmd.Flags().StringVarP(&export, "export", "e", a.cfg.Format, "Export format: json, cpp, rust or txt")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Export path (default offsets.<ext> in the output directory)")

	return cmd
}

func (a *app) detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <dump>",
		Short: "Detect which game variant produced a dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDetect(cmd, args[0])
		},
	}
}

func (a *app) batchCmd() *cobra.Command {
	var game, export, outputDir string

	cmd := &cobra.Command{
		Use:   "batch <dir|dump>...",
		Short: "Scan many dumps concurrently and summarize them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args, game, export, outputDir)
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", a.cfg.Game, "Game variant for every dump, or auto to detect per dump")
	cmd.Flags().StringVarP(&export, "export", "e", a.cfg.Format, "Export format written next to each scan: json, cpp, rust or txt")
	cmd.Flags().StringVar(&outputDir, "output-dir", a.cfg.OutputDir, "Directory for exported files")

	return cmd
}

func (a *app) diffCmd() *cobra.Command {
	var game string
	var oldReport bool

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Show offsets that changed between two dumps",
		Long: `Scans both dumps with the same variant table and lists every offset
whose value changed, appeared or disappeared. With --old-report the first
argument is a plain-text report exported earlier instead of a dump.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiff(cmd, args[0], args[1], game, oldReport)
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", a.cfg.Game, "Game variant: auto, freefire (ff), max or tela")
	cmd.Flags().BoolVar(&oldReport, "old-report", false, "Treat <old> as a plain-text report")

	return cmd
}

func (a *app) variantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List supported game variants and their offset tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := make(map[model.Variant]model.GameConfig, len(model.Variants))
			for _, v := range model.Variants {
				tables[v] = a.registry.Get(v)
			}
			a.printer(cmd).Variants(tables)
			return nil
		},
	}
}

// runScan handles the `scan` command.
func (a *app) runScan(cmd *cobra.Command, dumpPath, game, export, output string) error {
	if _, err := os.Stat(dumpPath); err != nil {
		return fmt.Errorf("dump not found: %w", err)
	}

	variant := resolveVariant(game, dumpPath)
	log.Info().Str("file", dumpPath).Str("variant", variant.Name()).Msg("Scanning for offsets")

	results := scanner.Scan(dumpPath, a.registry.Get(variant))
	if len(results) == 0 {
		return fmt.Errorf("scan failed or no results found: %s", dumpPath)
	}

	p := a.printer(cmd)
	p.Results(results, variant)
	p.Statistics(results)

	if export == "" {
		return nil
	}

	format, err := model.ParseFormat(export)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid export format, skipping export")
		return nil
	}

	if output == "" {
		output = filepath.Join(a.cfg.OutputDir, "offsets."+format.Extension())
	}

	if err := exporter.Export(results, variant, format, output); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to: %s\n", output)

	return nil
}

// runDetect handles the `detect` command.
func (a *app) runDetect(cmd *cobra.Command, dumpPath string) error {
	content, err := os.ReadFile(dumpPath)
	if err != nil {
		return fmt.Errorf("read dump: %w", err)
	}

	variant, ok := detect.Variant(string(content))
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No known game signature found")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Detected: %s\n", variant.Name())
	return nil
}

// runBatch handles the `batch` command.
func (a *app) runBatch(cmd *cobra.Command, roots []string, game, export, outputDir string) error {
	ctx, cancel := setupContext()
	defer cancel()

	paths, err := filewalker.NewWalker().Walk(roots...)
	if err != nil {
		return fmt.Errorf("discover dumps: %w", err)
	}
	if len(paths) == 0 {
		log.Warn().Strs("roots", roots).Msg("No dumps found")
		return nil
	}

	var format model.Format
	if export != "" {
		format, err = model.ParseFormat(export)
		if err != nil {
			log.Warn().Err(err).Msg("Invalid export format, skipping export")
			export = ""
		}
	}

	scans := scanner.ScanAll(ctx, paths, a.cfg.Workers, func(path string) (model.Variant, model.GameConfig) {
		variant := resolveVariant(game, path)
		return variant, a.registry.Get(variant)
	})

	a.printer(cmd).Batch(scans)

	failed := 0
	for _, s := range scans {
		if s.Err != nil {
			failed++
			continue
		}
		if export == "" {
			continue
		}

		base := strings.TrimSuffix(filepath.Base(s.Path), filepath.Ext(s.Path))
		out := filepath.Join(outputDir, base+".offsets."+format.Extension())
		if err := exporter.Export(s.Results, s.Variant, format, out); err != nil {
			log.Error().Err(err).Str("path", out).Msg("Export failed")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d dumps failed", failed, len(scans))
	}
	return nil
}

// runDiff handles the `diff` command.
func (a *app) runDiff(cmd *cobra.Command, oldPath, newPath, game string, oldReport bool) error {
	variant := resolveVariant(game, newPath)
	cfg := a.registry.Get(variant)

	var older []model.Result
	if oldReport {
		data, err := os.ReadFile(oldPath)
		if err != nil {
			return fmt.Errorf("read report: %w", err)
		}
		older = exporter.ParseReport(string(data))
	} else {
		var err error
		older, err = scanner.ScanFile(oldPath, cfg)
		if err != nil {
			return fmt.Errorf("scan old dump: %w", err)
		}
	}

	newer, err := scanner.ScanFile(newPath, cfg)
	if err != nil {
		return fmt.Errorf("scan new dump: %w", err)
	}

	changes := scanner.Compare(older, newer)
	log.Info().Str("variant", variant.Name()).Int("changes", len(changes)).Msg("Compared offsets")

	a.printer(cmd).Changes(changes)
	return nil
}

// resolveVariant maps the --game flag to a variant, reading the dump when
// it asks for auto-detection. Anything unusable falls back to Free Fire.
func resolveVariant(game, dumpPath string) model.Variant {
	if game == "" || strings.EqualFold(game, "auto") {
		content, err := os.ReadFile(dumpPath)
		if err != nil {
			log.Error().Err(err).Str("file", dumpPath).Msg("Error reading dump, using Free Fire standard")
			return model.FreeFire
		}

		variant, ok := detect.Variant(string(content))
		if !ok {
			log.Warn().Str("file", dumpPath).Msg("Could not detect game variant, using Free Fire standard")
			return model.FreeFire
		}

		log.Info().Str("file", dumpPath).Str("variant", variant.Name()).Msg("Detected game variant")
		return variant
	}

	variant, ok := model.ParseVariant(game)
	if !ok {
		log.Warn().Str("game", game).Msg("Invalid game variant, using Free Fire standard")
	}
	return variant
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
