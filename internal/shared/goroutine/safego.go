// Package goroutine wraps fire-and-forget work, recovering panics so a
// failed email send never takes the server down with it.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"dropcircle/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine. A panic is logged with the stack
// under the given name instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
