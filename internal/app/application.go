package app

import (
	"context"
	"sync"
	"time"

	"GopherScript/internal/config"
	"GopherScript/internal/logger"
	"GopherScript/internal/scripting"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Application drives the layer stack once per frame and owns the script
// engine for its lifetime.
type Application struct {
	Name      string
	FrameRate int
	MaxFrames int
	Scripts   *scripting.Engine

	hotReload bool
	layers    LayerStack
	now       func() time.Time
	frames    int

	closeOnce sync.Once
	closed    chan struct{}
}

// New initializes the script engine and, if configured, loads its assembly.
func New(cfg *config.Config) (*Application, error) {
	a := &Application{
		Name:      cfg.App.Name,
		FrameRate: cfg.App.FrameRate,
		MaxFrames: cfg.App.MaxFrames,
		Scripts:   scripting.NewEngine(),
		hotReload: cfg.Scripting.HotReload,
		now:       time.Now,
		closed:    make(chan struct{}),
	}
	logger.Log.Info("Application starting...", zap.String("name", a.Name))

	a.Scripts.Init()
	if cfg.Scripting.Assembly != "" {
		if err := a.Scripts.LoadAssembly(cfg.Scripting.Assembly); err != nil {
			a.Scripts.Shutdown()
			return nil, err
		}
	}
	return a, nil
}

// PushLayer adds a layer below all overlays and attaches it
func (a *Application) PushLayer(layer Layer) {
	a.layers.PushLayer(layer)
	layer.OnAttach()
	logger.Log.Debug("Layer attached", zap.String("layer", layer.Name()))
}

// PushOverlay adds a layer on top of the stack and attaches it
func (a *Application) PushOverlay(overlay Layer) {
	a.layers.PushOverlay(overlay)
	overlay.OnAttach()
	logger.Log.Debug("Overlay attached", zap.String("layer", overlay.Name()))
}

// PopLayer detaches and removes a regular layer
func (a *Application) PopLayer(layer Layer) {
	if a.layers.PopLayer(layer) {
		layer.OnDetach()
	}
}

// PopOverlay detaches and removes an overlay
func (a *Application) PopOverlay(overlay Layer) {
	if a.layers.PopOverlay(overlay) {
		overlay.OnDetach()
	}
}

func (a *Application) Layers() []Layer {
	return a.layers.Layers()
}

// Frames returns how many frames have run
func (a *Application) Frames() int {
	return a.frames
}

// Close asks Run to return after the current frame. Safe to call more than
// once and from other goroutines.
func (a *Application) Close() {
	a.closeOnce.Do(func() { close(a.closed) })
}

// Run ticks every layer at FrameRate until ctx is done, Close is called, or
// MaxFrames frames have run. Layers are detached and the script engine is
// shut down before it returns.
func (a *Application) Run(ctx context.Context) error {
	defer a.shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	if a.hotReload {
		g.Go(func() error {
			return a.Scripts.Watch(ctx)
		})
	}
	g.Go(func() error {
		defer cancel()
		a.loop(ctx)
		return nil
	})
	return g.Wait()
}

func (a *Application) loop(ctx context.Context) {
	logger.Log.Info("Main loop started", zap.Int("frameRate", a.FrameRate))

	ticker := time.NewTicker(time.Second / time.Duration(a.FrameRate))
	defer ticker.Stop()

	last := a.now()
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Main loop ended", zap.Int("frames", a.frames))
			return
		case <-a.closed:
			logger.Log.Info("Main loop ended", zap.Int("frames", a.frames))
			return
		case <-ticker.C:
		}

		current := a.now()
		deltaTime := float32(current.Sub(last).Seconds())
		last = current

		for _, layer := range a.layers.Layers() {
			layer.OnUpdate(deltaTime)
		}

		a.frames++
		if a.MaxFrames > 0 && a.frames >= a.MaxFrames {
			logger.Log.Info("Main loop ended", zap.Int("frames", a.frames))
			return
		}
	}
}

func (a *Application) shutdown() {
	for _, layer := range a.layers.Layers() {
		layer.OnDetach()
	}
	a.layers.Clear()
	a.Scripts.Shutdown()
	logger.Log.Info("Application shut down", zap.String("name", a.Name))
}
