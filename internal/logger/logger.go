package logger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the engine-wide logger. It is a no-op until Configure runs.
var Log = zap.NewNop()

// Message is a single entry kept in the console history
type Message struct {
	Level     zapcore.Level
	Message   string
	Timestamp time.Time
	Fields    map[string]interface{}
}

var (
	historyMu sync.Mutex
	history   []Message
)

// Configure builds Log for the given level. "trace" is accepted as an alias
// for debug.
func Configure(level string, development bool) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, NewHistoryCore(lvl))
	}))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Log = l
	return nil
}

// ParseLevel maps a config level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "trace" || name == "" {
		return zapcore.DebugLevel, nil
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return lvl, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

// Sync flushes buffered entries. Errors from syncing stdout are ignored.
func Sync() {
	_ = Log.Sync()
}

// Messages returns a copy of the console history
func Messages() []Message {
	historyMu.Lock()
	defer historyMu.Unlock()
	out := make([]Message, len(history))
	copy(out, history)
	return out
}

// MessagesAtLevel returns the console history entries at or above minLevel, the
// way the console panel filters by severity.
func MessagesAtLevel(minLevel zapcore.Level) []Message {
	historyMu.Lock()
	defer historyMu.Unlock()
	var out []Message
	for _, m := range history {
		if m.Level >= minLevel {
			out = append(out, m)
		}
	}
	return out
}

// ClearMessages drops the console history
func ClearMessages() {
	historyMu.Lock()
	history = nil
	historyMu.Unlock()
}

// historyCore records every entry it sees into the console history.
type historyCore struct {
	zapcore.LevelEnabler
	fields []zapcore.Field
}

// NewHistoryCore returns a core that appends entries at or above enab to the
// console history.
func NewHistoryCore(enab zapcore.LevelEnabler) zapcore.Core {
	return &historyCore{LevelEnabler: enab}
}

func (c *historyCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &historyCore{LevelEnabler: c.LevelEnabler, fields: merged}
}

func (c *historyCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *historyCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	historyMu.Lock()
	history = append(history, Message{
		Level:     ent.Level,
		Message:   ent.Message,
		Timestamp: ent.Time,
		Fields:    enc.Fields,
	})
	historyMu.Unlock()
	return nil
}

func (c *historyCore) Sync() error {
	return nil
}
