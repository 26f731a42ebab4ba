//go:build js && wasm

package host

import "syscall/js"

// Embedded reports whether the page runs inside an iframe, meaning there
// is a parent context listening for messages.
func Embedded() bool {
	window := js.Global()
	parent := window.Get("parent")
	if parent.IsUndefined() || parent.IsNull() {
		return false
	}
	return !parent.Equal(window)
}

// post sends the message to the parent frame. The payload crosses the
// boundary as a structured object so the listener needs no JSON parsing.
func post(m Message) {
	js.Global().Get("parent").Call("postMessage", js.ValueOf(map[string]any{
		"type": m.Type,
		"payload": map[string]any{
			"score": m.Payload.Score,
		},
	}), "*")
}
