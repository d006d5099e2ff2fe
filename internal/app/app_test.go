package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"GopherScript/internal/behaviour"
	"GopherScript/internal/config"
	"GopherScript/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingLayer struct {
	BaseLayer
	events *[]string
	deltas []float32
}

func newRecordingLayer(name string, events *[]string) *recordingLayer {
	return &recordingLayer{BaseLayer: NewBaseLayer(name), events: events}
}

func (l *recordingLayer) OnAttach() { *l.events = append(*l.events, "attach "+l.Name()) }
func (l *recordingLayer) OnDetach() { *l.events = append(*l.events, "detach "+l.Name()) }
func (l *recordingLayer) OnUpdate(deltaTime float32) {
	*l.events = append(*l.events, "update "+l.Name())
	l.deltas = append(l.deltas, deltaTime)
}

type emptyScript struct {
	behaviour.BaseComponent
}

func init() {
	behaviour.RegisterScript("AppTestScript", func() behaviour.Component { return &emptyScript{} })
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func testConfig(maxFrames int) *config.Config {
	cfg := config.Default()
	cfg.App.FrameRate = 1000
	cfg.App.MaxFrames = maxFrames
	return cfg
}

// steppedClock advances by step on every call
func steppedClock(step time.Duration) func() time.Time {
	current := time.Unix(0, 0)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func TestLayerStackOrder(t *testing.T) {
	var events []string
	var s LayerStack
	a := newRecordingLayer("a", &events)
	b := newRecordingLayer("b", &events)
	ui := newRecordingLayer("ui", &events)
	debug := newRecordingLayer("debug", &events)

	s.PushOverlay(ui)
	s.PushLayer(a)
	s.PushOverlay(debug)
	s.PushLayer(b)

	assert.Equal(t, []Layer{a, b, ui, debug}, s.Layers())

	assert.False(t, s.PopLayer(ui))
	assert.True(t, s.PopLayer(a))
	assert.False(t, s.PopOverlay(b))
	assert.True(t, s.PopOverlay(ui))
	assert.Equal(t, []Layer{b, debug}, s.Layers())

	s.PushLayer(a)
	assert.Equal(t, []Layer{b, a, debug}, s.Layers())

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestBaseLayerName(t *testing.T) {
	assert.Equal(t, "Layer", NewBaseLayer("").Name())
	assert.Equal(t, "GameLayer", NewBaseLayer("GameLayer").Name())
}

func TestApplicationRunMaxFrames(t *testing.T) {
	observeLogs(t)
	var events []string
	a, err := New(testConfig(3))
	require.NoError(t, err)
	a.now = steppedClock(10 * time.Millisecond)

	game := newRecordingLayer("game", &events)
	ui := newRecordingLayer("ui", &events)
	a.PushOverlay(ui)
	a.PushLayer(game)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 3, a.Frames())
	assert.Equal(t, []string{
		"attach ui", "attach game",
		"update game", "update ui",
		"update game", "update ui",
		"update game", "update ui",
		"detach game", "detach ui",
	}, events)
	for _, d := range game.deltas {
		assert.InDelta(t, 0.01, d, 1e-6)
	}
	assert.False(t, a.Scripts.IsInitialized())
	assert.Empty(t, a.Layers())
}

func TestApplicationClose(t *testing.T) {
	observeLogs(t)
	var events []string
	a, err := New(testConfig(0))
	require.NoError(t, err)
	layer := newRecordingLayer("game", &events)
	a.PushLayer(layer)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	a.Close()
	a.Close()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
	assert.Equal(t, "detach game", events[len(events)-1])
}

func TestApplicationContextCancel(t *testing.T) {
	observeLogs(t)
	a, err := New(testConfig(0))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	assert.False(t, a.Scripts.IsInitialized())
}

func TestApplicationPopLayerDetaches(t *testing.T) {
	observeLogs(t)
	var events []string
	a, err := New(testConfig(1))
	require.NoError(t, err)
	layer := newRecordingLayer("game", &events)
	a.PushLayer(layer)

	a.PopLayer(layer)
	a.PopLayer(layer)

	assert.Equal(t, []string{"attach game", "detach game"}, events)
	assert.Empty(t, a.Layers())
}

func TestNewLoadsAssembly(t *testing.T) {
	observeLogs(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "assembly.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: AppTest\nclasses:\n  - name: AppTestScript\n"), 0644))

	cfg := testConfig(1)
	cfg.Scripting.Assembly = path
	a, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "AppTest", a.Scripts.Assembly().Name)

	cfg.Scripting.Assembly = filepath.Join(dir, "missing.yaml")
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestApplicationHotReload(t *testing.T) {
	observeLogs(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "assembly.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: V1\nclasses:\n  - name: AppTestScript\n"), 0644))

	cfg := testConfig(0)
	cfg.Scripting.Assembly = path
	cfg.Scripting.HotReload = true
	a, err := New(cfg)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("name: V2\nclasses:\n  - name: AppTestScript\n"), 0644)
		return a.Scripts.Assembly().Name == "V2"
	}, 5*time.Second, 50*time.Millisecond)

	a.Close()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
}
