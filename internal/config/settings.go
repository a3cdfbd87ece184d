package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/nhatvu148/solar-portfolio/internal/capability"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage    = "app_language"
	KeyFragment    = "location_fragment"
	KeyOrbitSpeed  = "orbit_speed_multiplier"
	KeyAutoRotate  = "auto_rotate"
	KeyVerbose     = "verbose_logging"
	KeyShowFPS     = "show_fps"
	KeyContentFile = "content_file"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultOrbitSpeed = 1.0
	DefaultAutoRotate = true
	DefaultVerbose    = false
	DefaultShowFPS    = false
)

// Orbit speed multiplier bounds
const (
	MinOrbitSpeed = 0.1
	MaxOrbitSpeed = 5.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"vi":     "Tiếng Việt",
	}
}

// GetFragment returns the persisted location fragment. Native builds have no
// address bar, so the override marker survives a reload through here.
func (s *Settings) GetFragment() string {
	return s.app.Preferences().String(KeyFragment)
}

// SetFragment stores the location fragment, adding the leading '#'
func (s *Settings) SetFragment(fragment string) {
	s.app.Preferences().SetString(KeyFragment, capability.NormalizeFragment(fragment))
}

// ClearFragment removes the persisted fragment
func (s *Settings) ClearFragment() {
	s.app.Preferences().RemoveValue(KeyFragment)
}

// GetOrbitSpeed returns the orbit animation speed multiplier
func (s *Settings) GetOrbitSpeed() float64 {
	value := s.app.Preferences().FloatWithFallback(KeyOrbitSpeed, DefaultOrbitSpeed)
	if value < MinOrbitSpeed || value > MaxOrbitSpeed {
		s.SetOrbitSpeed(value)
		return s.app.Preferences().Float(KeyOrbitSpeed)
	}
	return value
}

// SetOrbitSpeed sets the orbit speed multiplier, clamped to the allowed range
func (s *Settings) SetOrbitSpeed(speed float64) {
	if speed < MinOrbitSpeed {
		speed = MinOrbitSpeed
	}
	if speed > MaxOrbitSpeed {
		speed = MaxOrbitSpeed
	}
	s.app.Preferences().SetFloat(KeyOrbitSpeed, speed)
}

// GetAutoRotate returns whether planets orbit on their own
func (s *Settings) GetAutoRotate() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRotate, DefaultAutoRotate)
}

// SetAutoRotate sets whether planets orbit on their own
func (s *Settings) SetAutoRotate(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoRotate, enabled)
}

// GetVerbose returns whether debug logging is enabled
func (s *Settings) GetVerbose() bool {
	return s.app.Preferences().BoolWithFallback(KeyVerbose, DefaultVerbose)
}

// SetVerbose sets whether debug logging is enabled
func (s *Settings) SetVerbose(verbose bool) {
	s.app.Preferences().SetBool(KeyVerbose, verbose)
}

// GetShowFPS returns whether the scene shows its frame rate
func (s *Settings) GetShowFPS() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowFPS, DefaultShowFPS)
}

// SetShowFPS sets whether the scene shows its frame rate
func (s *Settings) SetShowFPS(show bool) {
	s.app.Preferences().SetBool(KeyShowFPS, show)
}

// GetContentFile returns the content override file, empty for embedded content
func (s *Settings) GetContentFile() string {
	return s.app.Preferences().String(KeyContentFile)
}

// SetContentFile sets the content override file
func (s *Settings) SetContentFile(path string) {
	s.app.Preferences().SetString(KeyContentFile, strings.TrimSpace(path))
}
