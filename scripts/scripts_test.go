package scripts

import (
	"testing"

	"GopherScript/internal/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// observeLogs routes logger.Log into an in-memory sink for the test
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}
