//go:build !js

package host

// Embedded always reports false outside the browser; desktop runs have no
// parent context.
func Embedded() bool { return false }

func post(Message) {}
