// Package goroutine wraps background goroutines with panic recovery.
package goroutine

import (
	"runtime/debug"

	"fieldserve/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic in fn is logged with its stack
// under the given name instead of taking the process down.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverPanic(log, name)
		fn()
	}()
}

func recoverPanic(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", r,
			"stack", string(debug.Stack()),
		)
	}
}
