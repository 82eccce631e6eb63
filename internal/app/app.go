// Package app runs the clock face: it owns the renderer, the screen and the
// controller, and drives them from a single loop.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rook-computer/clockface/internal/app/screens"
	"github.com/rook-computer/clockface/internal/assets"
	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/logger"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/system"
	"github.com/rook-computer/clockface/internal/timer"
	"github.com/rook-computer/clockface/internal/watchface"
)

type App struct {
	Config    config.Config
	Render    render.Renderer
	Resources screens.Resources
	Logger    logger.Logger

	// Source feeds the variant selector; nil seeds from Config.Seed.
	Source watchface.Source
	// Ticks replaces the minute ticker when set.
	Ticks <-chan time.Time

	controller    *watchface.Controller
	currentScreen render.Screen

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(cfg config.Config, renderer render.Renderer, log logger.Logger) *App {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &App{Config: cfg, Render: renderer, Logger: log, exitCh: make(chan error, 1)}
}

// NewRenderer builds the renderer named by cfg.Output.
func NewRenderer(cfg config.Config, log logger.Logger) (render.Renderer, error) {
	switch cfg.Output {
	case config.OutputFramebuffer:
		r := render.NewFBRenderer(cfg.Framebuffer, cfg.CanvasWidth, cfg.CanvasHeight)
		r.Logger = log
		return r, nil
	case config.OutputPNG:
		r := render.NewPNGRenderer(cfg.PNGPath, cfg.CanvasWidth, cfg.CanvasHeight)
		r.Logger = log
		return r, nil
	case config.OutputTerminal:
		r := render.NewTermRenderer(os.Stdout, cfg.CanvasWidth, cfg.CanvasHeight)
		r.Logger = log
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownOutput, cfg.Output)
	}
}

// Exit requests the app to stop running. Only the first call counts.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start shows the face and blocks until ctx is done or Exit is called.
// Cancellation is a clean shutdown and returns nil.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if app.Render == nil {
		r, err := NewRenderer(app.Config, app.Logger)
		if err != nil {
			return err
		}
		app.Render = r
	}
	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return fmt.Errorf("start renderer: %w", err)
	}
	defer app.Render.Stop()

	if app.Config.Output == config.OutputFramebuffer {
		restore := system.EnterGraphics(app.Logger)
		defer restore()
	}

	source := app.Source
	if source == nil {
		source = watchface.NewSource(app.Config.Seed)
	}
	caps := app.Render.Capabilities()
	controller, err := watchface.FromConfig(app.Config, caps, source)
	if err != nil {
		return err
	}
	controller.Logger = app.Logger
	app.controller = controller
	app.Logger.Infof("app", "edition=%s strategy=%s color=%t", app.Config.Edition, controller.Strategy.Name(), caps.Color)

	if app.Resources == nil {
		app.Resources = assets.NewLoader(app.Logger, app.Config.ImageMaxSize)
	}
	face := screens.NewWatchfaceScreen(app.Resources, app.Logger, app.Config)
	if err := app.setScreen(ctx, face); err != nil {
		return err
	}
	defer func() { _ = face.Stop() }()

	controller.Startup()
	app.redraw()

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	ticks := app.Ticks
	if ticks == nil {
		ticker := timer.NewMinuteTicker(nil, app.Config.TickPeriod)
		ticks = ticker.C()
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker.Run(loopCtx)
		}()
	}
	if app.Config.ExitOnF4 {
		system.StartExitOnF4(loopCtx, app.Logger, func() { app.Exit(nil) })
	}

	err = app.loop(ctx, ticks)
	cancel()
	wg.Wait()

	controller.Stop()
	app.Logger.Infof("app", "stopped after %d variant draws", controller.Selector.Draws())
	return err
}

func (app *App) loop(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-app.exitCh:
			return err
		case <-ticks:
			app.controller.Tick()
			app.redraw()
		}
	}
}

func (app *App) redraw() {
	app.Render.RedrawWithState(app.controller.Snapshot())
}

func (app *App) setScreen(ctx context.Context, screen render.Screen) error {
	if app.currentScreen != nil {
		_ = app.currentScreen.Stop()
	}
	app.currentScreen = screen
	app.Render.SetScreen(screen)
	return screen.Start(ctx)
}
