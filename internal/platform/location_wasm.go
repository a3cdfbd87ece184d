//go:build js && wasm

package platform

import "syscall/js"

// NewLocation returns the browser location. The fragment is location.hash
// alone; store is not consulted so an override does not persist across
// visits. reload is unused because the page itself reloads.
func NewLocation(_ FragmentStore, _ func()) Location {
	return &pageLocation{
		hash: func() string {
			hash := location().Get("hash")
			if hash.Type() != js.TypeString {
				return ""
			}
			return hash.String()
		},
		setHash: func(fragment string) { location().Set("hash", fragment) },
		reload:  func() { location().Call("reload") },
	}
}

func location() js.Value {
	return js.Global().Get("location")
}
