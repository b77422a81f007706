package trellis

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// logger receives trellis diagnostics. Warnings and frame stats are only
// logged in debug mode; screenshot failures are always logged.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLogger replaces the logger used for diagnostics. A nil
// logger discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugLog reports per-frame timing stats.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	logger.Info("trellis frame",
		"traverse", stats.traverseTime,
		"submit", stats.submitTime,
		"total", stats.traverseTime+stats.submitTime,
		"commands", stats.commandCount)
}

// debugWarn logs a warning when debug mode is on.
func debugWarn(msg string, args ...any) {
	if !globalDebug {
		return
	}
	logger.Warn(msg, args...)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed layer
// is used in a tree operation. Only called in debug mode.
func debugCheckDestroyed(l *Layer, op string) {
	if l.destroyed {
		panic(fmt.Sprintf("trellis debug: %s on destroyed layer %q", op, l.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(l *Layer) {
	depth := 0
	for p := l; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("trellis: layer tree too deep", "depth", depth, "max", debugMaxTreeDepth, "layer", l.Name)
	}
}

// debugCheckInstance panics when a background instance is used after Destroy
// or added twice. Only called in debug mode.
func debugCheckInstance(owner *Background, destroyed, added bool, op string) {
	if destroyed {
		panic(fmt.Sprintf("trellis debug: %s on destroyed background instance (%s)", op, owner.kind()))
	}
	if added && op == "AddTo" {
		panic(fmt.Sprintf("trellis debug: AddTo called twice on background instance (%s)", owner.kind()))
	}
}
