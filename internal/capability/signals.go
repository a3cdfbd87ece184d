package capability

// Signals is a snapshot of the runtime environment taken once at mount
type Signals struct {
	UserAgent  string `yaml:"user_agent"`
	Vendor     string `yaml:"vendor"`
	Protocol   string `yaml:"protocol"`
	Hostname   string `yaml:"hostname"`
	Fragment   string `yaml:"fragment"`
	BrandCheck bool   `yaml:"brand_check"`
}

// Prober reads Signals from the environment. Probe never fails; unavailable
// signals are empty strings.
type Prober interface {
	Probe() Signals
}

// FragmentSource supplies the persisted navigable fragment on targets that
// have no location bar.
type FragmentSource interface {
	GetFragment() string
}

// StaticProber always returns the same Signals
type StaticProber struct {
	Signals Signals
}

// Probe returns the fixed signals
func (p StaticProber) Probe() Signals {
	return p.Signals
}
