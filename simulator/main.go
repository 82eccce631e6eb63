// Command simulator previews the clock face without a framebuffer: it runs
// the face on a fast tick and writes every frame as a numbered PNG.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rook-computer/clockface/internal/app"
	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/logger"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/state"
)

var (
	configPath string
	outDir     string
	frames     int
	period     time.Duration
	edition    string
	display    string
	seed       uint64
	imageID    string

	rootCmd = &cobra.Command{
		Use:           "simulator",
		Short:         "Render clock face frames to PNG files on a fast tick.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "simulator:", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to configuration file")
	flags.StringVar(&outDir, "out", "/tmp/clockface-sim", "directory for the frames")
	flags.IntVarP(&frames, "frames", "n", 10, "frames to render, including the startup frame")
	flags.DurationVar(&period, "period", 200*time.Millisecond, "simulated minute")
	flags.StringVar(&edition, "edition", "", "background | caption | adaptive")
	flags.StringVar(&display, "display", "", "auto | color | mono")
	flags.Uint64Var(&seed, "seed", 0, "variant random seed")
	flags.StringVar(&imageID, "image", "", "image id")
}

// countingRenderer cancels the run once enough frames are written.
type countingRenderer struct {
	*render.PNGRenderer

	limit  int
	cancel context.CancelFunc
}

func (r *countingRenderer) RedrawWithState(snap state.State) {
	r.PNGRenderer.RedrawWithState(snap)
	if r.Frames() >= r.limit {
		r.cancel()
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("edition") {
		cfg.Edition = edition
	}
	if cmd.Flags().Changed("display") {
		cfg.Display = display
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("image") {
		cfg.Image = imageID
	}
	cfg.Output = config.OutputPNG
	cfg.PNGPath = filepath.Join(outDir, "frame-%03d.png")
	cfg.TickPeriod = period
	if err := config.Validate(&cfg); err != nil {
		return err
	}
	if frames < 1 {
		return fmt.Errorf("frames must be at least 1 (got %d)", frames)
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.NewZap(logger.New(os.Stdout, level))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	png := render.NewPNGRenderer(cfg.PNGPath, cfg.CanvasWidth, cfg.CanvasHeight)
	png.Logger = log
	renderer := &countingRenderer{PNGRenderer: png, limit: frames, cancel: cancel}

	if err := app.New(cfg, renderer, log).Start(ctx); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", png.Frames(), outDir)
	return nil
}
