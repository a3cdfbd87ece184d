//go:build !js || !wasm

package platform

import "sync"

type nativeLocation struct {
	mu     sync.Mutex
	store  FragmentStore
	reload func()
}

// NewLocation returns the native location. The fragment lives in store and
// Reload calls reload, which is expected to rebuild the window content.
func NewLocation(store FragmentStore, reload func()) Location {
	return &nativeLocation{store: store, reload: reload}
}

func (l *nativeLocation) Fragment() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store == nil {
		return ""
	}
	return l.store.GetFragment()
}

func (l *nativeLocation) SetFragment(fragment string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store != nil {
		l.store.SetFragment(fragment)
	}
}

func (l *nativeLocation) Reload() {
	l.mu.Lock()
	reload := l.reload
	l.mu.Unlock()
	if reload != nil {
		reload()
	}
}
