package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"GopherScript/internal/behaviour"
	"GopherScript/internal/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// counterScript records how often each hook runs
type counterScript struct {
	behaviour.BaseComponent
	Speed   float32
	Lives   int
	creates int
	updates int
	deletes int
	elapsed float32
}

func (c *counterScript) OnCreate()  { c.creates++ }
func (c *counterScript) OnDestroy() { c.deletes++ }

func (c *counterScript) OnUpdate(deltaTime float32) {
	c.updates++
	c.elapsed += deltaTime
}

func init() {
	behaviour.RegisterScript("CounterScript", func() behaviour.Component {
		return &counterScript{Speed: 1, Lives: 3}
	})
	behaviour.RegisterScript("OtherScript", func() behaviour.Component {
		return &counterScript{}
	})
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine()
	e.Init()
	t.Cleanup(e.Shutdown)
	return e
}

func writeAssembly(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "assembly.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}
