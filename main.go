package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rook-computer/clockface/internal/app"
	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/logger"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// overrides holds flag values; only flags set on the command line are
	// applied on top of the loaded config.
	overrides config.Config
	debug     bool

	rootCmd = &cobra.Command{
		Use:   "clockface",
		Short: "Show a minute clock face with a rotating color variant.",
		Long: `Draws the clock face and redraws it at every minute boundary.

Each minute the face picks a new variant at random, never the one it shows
now. Settings come from the defaults, then the YAML config file, then
CLOCKFACE_* environment variables, then flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "clockface:", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to configuration file (default "+config.DefaultConfigFilename+" if present)")
	flags.StringVar(&overrides.Edition, "edition", "", "background | caption | adaptive")
	flags.StringVar(&overrides.Display, "display", "", "auto | color | mono")
	flags.StringVar(&overrides.ClockFormat, "clock-format", "", "24h | 12h | locale")
	flags.StringVarP(&overrides.Output, "output", "o", "", "framebuffer | png | terminal")
	flags.StringVar(&overrides.Framebuffer, "fb", "", "framebuffer device")
	flags.StringVar(&overrides.PNGPath, "png", "", "PNG output path; %d numbers the frames")
	flags.StringVar(&overrides.Image, "image", "", "image id: doge | none | file:<path> | qr:<payload>")
	flags.BoolVar(&overrides.NoImage, "no-image", false, "disable image rendering")
	flags.Uint64Var(&overrides.Seed, "seed", 0, "variant random seed (0 seeds from the clock)")
	flags.DurationVar(&overrides.TickPeriod, "tick-period", 0, "tick every period instead of every minute boundary")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "debug | info | warn | error")
	flags.BoolVar(&debug, "debug", false, "shorthand for --log-level=debug")
	flags.StringVar(&overrides.StdioLog, "stdio-log", "", "redirect stdout+stderr (including panics) to this file; also "+config.EnvStdioLog)
	flags.BoolVar(&overrides.ExitOnF4, "exit-on-f4", false, "exit when F4 is pressed (Linux evdev)")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	// Best-effort: send all output, including panic traces, to a file so
	// crashes are diagnosable while the console is in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	level, ok := logger.ParseLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	log := logger.NewZap(logger.New(os.Stdout, level))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log.Infof("main", "clockface starting, output=%s edition=%s", cfg.Output, cfg.Edition)
	started := time.Now()

	a := app.New(cfg, nil, log)
	if err := a.Start(ctx); err != nil {
		log.Errorf("main", "app error: %v", err)
		return err
	}

	log.Infof("main", "clockface stopped after %s", time.Since(started).Round(time.Second))
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("edition") {
		cfg.Edition = overrides.Edition
	}
	if changed("display") {
		cfg.Display = overrides.Display
	}
	if changed("clock-format") {
		cfg.ClockFormat = overrides.ClockFormat
	}
	if changed("output") {
		cfg.Output = overrides.Output
	}
	if changed("fb") {
		cfg.Framebuffer = overrides.Framebuffer
	}
	if changed("png") {
		cfg.PNGPath = overrides.PNGPath
	}
	if changed("image") {
		cfg.Image = overrides.Image
	}
	if changed("no-image") {
		cfg.NoImage = overrides.NoImage
	}
	if changed("seed") {
		cfg.Seed = overrides.Seed
	}
	if changed("tick-period") {
		cfg.TickPeriod = overrides.TickPeriod
	}
	if changed("log-level") {
		cfg.LogLevel = overrides.LogLevel
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	if changed("stdio-log") {
		cfg.StdioLog = overrides.StdioLog
	}
	if changed("exit-on-f4") {
		cfg.ExitOnF4 = overrides.ExitOnF4
	}
}
