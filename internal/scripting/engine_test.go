package scripting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineInitShutdown(t *testing.T) {
	logs := observeLogs(t)
	e := NewEngine()

	assert.False(t, e.IsInitialized())
	e.Init()
	e.Init()
	assert.True(t, e.IsInitialized())
	assert.Equal(t, 1, logs.FilterMessage("Scripting engine initialized").Len())

	e.Shutdown()
	assert.False(t, e.IsInitialized())
	e.Shutdown()
	assert.Equal(t, 1, logs.FilterMessage("Shutting down scripting engine...").Len())
}

func TestCreateScriptInstanceRequiresInit(t *testing.T) {
	observeLogs(t)
	e := NewEngine()

	_, err := e.CreateScriptInstance("CounterScript")
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestCreateScriptInstance(t *testing.T) {
	observeLogs(t)
	e := newEngine(t)

	a, err := e.CreateScriptInstance("CounterScript")
	require.NoError(t, err)
	b, err := e.CreateScriptInstance("CounterScript")
	require.NoError(t, err)

	assert.Equal(t, "CounterScript", a.ClassName())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotSame(t, a.Script(), b.Script())

	_, err = e.CreateScriptInstance("Missing")
	assert.True(t, errors.Is(err, ErrUnknownClass))
}

func TestCreateScriptInstanceAppliesAssembly(t *testing.T) {
	observeLogs(t)
	e := newEngine(t)
	path := writeAssembly(t, t.TempDir(), `
name: Game
classes:
  - name: CounterScript
    fields:
      Speed: 2.5
      Lives: 7
`)
	require.NoError(t, e.LoadAssembly(path))

	inst, err := e.CreateScriptInstance("CounterScript")
	require.NoError(t, err)
	script := inst.Script().(*counterScript)
	assert.Equal(t, float32(2.5), script.Speed)
	assert.Equal(t, 7, script.Lives)

	// Registered but not part of the loaded assembly
	_, err = e.CreateScriptInstance("OtherScript")
	assert.True(t, errors.Is(err, ErrUnknownClass))
}

func TestLoadAssemblyKeepsPreviousOnError(t *testing.T) {
	observeLogs(t)
	e := newEngine(t)
	dir := t.TempDir()
	good := writeAssembly(t, dir, "name: Good\nclasses:\n  - name: CounterScript\n")
	require.NoError(t, e.LoadAssembly(good))

	err := e.LoadAssembly(dir + "/missing.yaml")
	require.Error(t, err)
	assert.Equal(t, "Good", e.Assembly().Name)
	assert.Equal(t, good, e.AssemblyPath())
}

func TestReloadAssembly(t *testing.T) {
	logs := observeLogs(t)
	e := newEngine(t)

	assert.True(t, errors.Is(e.ReloadAssembly(), ErrNoAssembly))
	assert.Equal(t, 1, logs.FilterMessage("Reload requested but no script assembly is loaded").Len())

	dir := t.TempDir()
	path := writeAssembly(t, dir, "name: V1\nclasses:\n  - name: CounterScript\n")
	require.NoError(t, e.LoadAssembly(path))

	writeAssembly(t, dir, "name: V2\nclasses:\n  - name: CounterScript\n    fields:\n      Speed: 9\n")
	require.NoError(t, e.ReloadAssembly())

	assert.Equal(t, "V2", e.Assembly().Name)
	inst, err := e.CreateScriptInstance("CounterScript")
	require.NoError(t, err)
	assert.Equal(t, float32(9), inst.Script().(*counterScript).Speed)
}
