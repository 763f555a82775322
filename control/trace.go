// File: control/trace.go
// Author: momentics <momentics@gmail.com>
//
// Log-backed tracer: routes ring diagnostics through a stdlib logger.

package control

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// LogTracer writes ring events through a *log.Logger.
type LogTracer struct {
	l *log.Logger
}

// NewLogTracer wraps the given logger; nil selects log.Default().
func NewLogTracer(l *log.Logger) *LogTracer {
	if l == nil {
		l = log.Default()
	}
	return &LogTracer{l: l}
}

// Trace emits one event line. Fields are printed in key order so the
// output stays stable for log scraping.
func (t *LogTracer) Trace(event string, fields map[string]any) {
	if len(fields) == 0 {
		t.l.Printf("slotring: %s", event)
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	t.l.Printf("slotring: %s%s", event, b.String())
}
