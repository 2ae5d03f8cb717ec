//go:build debug

package program

const debugBuild = true

// catch lets panics through so the debugger stops where they happen
func catch(fn func() (bool, error)) (bool, error) {
	return fn()
}
