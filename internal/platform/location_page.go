package platform

// pageLocation is a location backed by an address bar. The fragment is read
// from the address only, so an override never outlives the URL carrying it.
type pageLocation struct {
	hash    func() string
	setHash func(string)
	reload  func()
}

func (l *pageLocation) Fragment() string {
	if l.hash == nil {
		return ""
	}
	return l.hash()
}

func (l *pageLocation) SetFragment(fragment string) {
	if l.setHash != nil {
		l.setHash(fragment)
	}
}

func (l *pageLocation) Reload() {
	if l.reload != nil {
		l.reload()
	}
}
