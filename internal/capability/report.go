package capability

// Report bundles everything the gate derives from one probe
type Report struct {
	Signals           Signals `yaml:"signals"`
	Verdict           Verdict `yaml:"verdict"`
	WillHaveIssues    bool    `yaml:"will_have_issues"`
	SkipFullRendering bool    `yaml:"skip_full_rendering"`
	Recommendation    string  `yaml:"recommendation"`
}

// Assess runs the gate over s
func Assess(s Signals) Report {
	v := Decide(s)
	return Report{
		Signals:           s,
		Verdict:           v,
		WillHaveIssues:    v.WillHaveIssues(),
		SkipFullRendering: ShouldSkipFullRendering(v),
		Recommendation:    Recommend(v),
	}
}
