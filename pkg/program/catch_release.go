//go:build !debug

package program

import (
	"fmt"
	"runtime/debug"
)

const debugBuild = false

// catch turns a panic in fn into an error carrying the stack
func catch(fn func() (bool, error)) (restart bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return fn()
}
