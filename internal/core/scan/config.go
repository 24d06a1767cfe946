package scan

// Config maps each pass kind to enabled/disabled.
// All passes default enabled. Each Scanner owns its own Config so
// independent documents never share toggle state
type Config struct {
	enabled [kindCount]bool
}

// NewConfig returns a Config with every pass enabled
func NewConfig() *Config {
	c := &Config{}
	for i := range c.enabled {
		c.enabled[i] = true
	}
	return c
}

// Enabled reports whether the pass kind is enabled
func (c *Config) Enabled(k Kind) bool {
	if k >= kindCount {
		return false
	}
	return c.enabled[k]
}

// SetEnabled toggles the pass kind
func (c *Config) SetEnabled(k Kind, on bool) {
	if k >= kindCount {
		return
	}
	c.enabled[k] = on
}

// SetEnabledName toggles a pass by wire name.
// An unknown name is a silent no-op, matching the reference policy
func (c *Config) SetEnabledName(name string, on bool) {
	if k, ok := ParseKind(name); ok {
		c.SetEnabled(k, on)
	}
}

// Snapshot returns the current toggle state keyed by wire name
func (c *Config) Snapshot() map[string]bool {
	out := make(map[string]bool, kindCount)
	for i := Kind(0); i < kindCount; i++ {
		out[i.String()] = c.enabled[i]
	}
	return out
}
