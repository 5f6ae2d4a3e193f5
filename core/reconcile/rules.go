package reconcile

import "strings"

// Rule suppresses unmatched remote titles containing Marker when Enabled.
type Rule struct {
	// Name identifies the rule in reports (e.g. "demo").
	Name string `json:"name"`

	// Marker is the literal substring looked up in the title.
	Marker string `json:"marker"`

	// Enabled is the configuration switch of the rule.
	Enabled bool `json:"enabled"`
}

// Rules is an ordered exclusion rule set.
type Rules []Rule

// ExclusionConfig holds the switches of the default rule set.
type ExclusionConfig struct {
	SkipDemo       bool `mapstructure:"skip_demo" default:"true"`
	SkipHack       bool `mapstructure:"skip_hack" default:"true"`
	SkipHomebrew   bool `mapstructure:"skip_homebrew" default:"true"`
	SkipPrototype  bool `mapstructure:"skip_prototype" default:"true"`
	SkipSubset     bool `mapstructure:"skip_subset" default:"true"`
	SkipUnlicensed bool `mapstructure:"skip_unlicensed" default:"true"`
}

// DefaultRules returns the rule set in its fixed declared order.
func DefaultRules(cfg ExclusionConfig) Rules {
	return Rules{
		{Name: "demo", Marker: "~Demo~", Enabled: cfg.SkipDemo},
		{Name: "hack", Marker: "~Hack~", Enabled: cfg.SkipHack},
		{Name: "homebrew", Marker: "~Homebrew~", Enabled: cfg.SkipHomebrew},
		{Name: "prototype", Marker: "~Prototype~", Enabled: cfg.SkipPrototype},
		{Name: "subset", Marker: "[Subset", Enabled: cfg.SkipSubset},
		{Name: "unlicensed", Marker: "~Unlicensed~", Enabled: cfg.SkipUnlicensed},
	}
}

// Match returns the first enabled rule whose marker occurs in title.
func (r Rules) Match(title string) (Rule, bool) {
	for _, rule := range r {
		if !rule.Enabled || rule.Marker == "" {
			continue
		}
		if strings.Contains(title, rule.Marker) {
			return rule, true
		}
	}
	return Rule{}, false
}
