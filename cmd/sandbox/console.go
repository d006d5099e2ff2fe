package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"GopherScript/internal/logger"

	"go.uber.org/zap/zapcore"
)

// writeConsole prints the logger's console history at or above minLevel, one
// entry per line with its fields in key order.
func writeConsole(w io.Writer, minLevel zapcore.Level) error {
	for _, m := range logger.MessagesAtLevel(minLevel) {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %-5s %s", m.Timestamp.Format("15:04:05.000"), m.Level.CapitalString(), m.Message)

		keys := make([]string, 0, len(m.Fields))
		for k := range m.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, m.Fields[k])
		}

		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
