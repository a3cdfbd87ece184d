package platform

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
)

// Location is the page address as far as rendering selection is concerned
type Location interface {
	Fragment() string
	SetFragment(fragment string)
	Reload()
}

// FragmentStore persists the fragment where there is no address bar
type FragmentStore interface {
	GetFragment() string
	SetFragment(fragment string)
}

// ErrUnsupportedURL is returned for links the app cannot open itself
var ErrUnsupportedURL = errors.New("url cannot be opened from the app")

var openableSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// ParseExternalURL validates raw as a link the app may open. Bare host paths
// such as "github.com/user" get an https scheme.
func ParseExternalURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty url", ErrUnsupportedURL)
	}
	if !strings.Contains(raw, "://") && !strings.HasPrefix(raw, "mailto:") {
		if strings.Contains(raw, "@") {
			raw = "mailto:" + raw
		} else {
			raw = "https://" + raw
		}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if !openableSchemes[strings.ToLower(u.Scheme)] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, raw)
	}
	return u, nil
}

// OpenURL opens raw in the system browser (a new tab on web)
func OpenURL(app fyne.App, raw string) error {
	u, err := ParseExternalURL(raw)
	if err != nil {
		return err
	}
	if err := app.OpenURL(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", u, err)
	}
	return nil
}
