package config

// Statfile represents the structure of the statline.yaml configuration file.
type Statfile struct {
	Features []string      `yaml:"features"`
	Theme    string        `yaml:"theme"`
	Colors   *bool         `yaml:"colors"`
	Emoji    bool          `yaml:"emoji"`
	Debug    bool          `yaml:"debug"`
	Usage    UsageDTO      `yaml:"usage"`
	Alerts   AlertsDTO     `yaml:"alerts"`
	Cache    CacheDTO      `yaml:"cache"`
	Render   RenderDTO     `yaml:"render"`
}

// UsageDTO configures the external usage data integration.
type UsageDTO struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command"`
}

// AlertsDTO holds the system-monitoring alert thresholds in whole percent.
type AlertsDTO struct {
	CPUPercent    int `yaml:"cpuPercent"`
	MemoryPercent int `yaml:"memoryPercent"`
}

// CacheDTO holds the cache timing parameters as Go duration strings.
type CacheDTO struct {
	TTL   string `yaml:"ttl"`
	Grace string `yaml:"grace"`
}

// RenderDTO holds the render rate limit as a Go duration string.
type RenderDTO struct {
	MinInterval string `yaml:"minInterval"`
}
