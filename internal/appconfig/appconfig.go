// internal/appconfig/appconfig.go
// Package appconfig manages loading and validating the circuitdiff
// configuration.
package appconfig

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultMainReport is the baseline report written by the main-branch CI job.
	DefaultMainReport = "main-report.txt"
	// DefaultCurrentReport is the candidate report from the branch under review.
	DefaultCurrentReport = "current-report.txt"
	// DefaultOutputPath is where the HTML comparison table is written.
	DefaultOutputPath = "comparison_diff.html"
)

// DefaultExcludeMarkers lists substrings whose presence disqualifies a report
// line. The circuit dumps interleave placeholder type names with real
// metrics.
var DefaultExcludeMarkers = []string{"PhantomData"}

// Config represents the top-level application configuration.
type Config struct {
	MainReport     string   `json:"mainReport" mapstructure:"mainReport"`
	CurrentReport  string   `json:"currentReport" mapstructure:"currentReport"`
	Output         string   `json:"output" mapstructure:"output"`
	ExcludeMarkers []string `json:"excludeMarkers,omitempty" mapstructure:"excludeMarkers"`
	Debug          bool     `json:"debug" mapstructure:"debug"`
	LogFile        string   `json:"logFile,omitempty" mapstructure:"logFile"`
	ConfigPath     string   `json:"-" mapstructure:"-"`
}

// Default returns the configuration used when no file and no flags are
// present: the fixed report names the CI pipeline produces.
func Default() Config {
	return Config{
		MainReport:     DefaultMainReport,
		CurrentReport:  DefaultCurrentReport,
		Output:         DefaultOutputPath,
		ExcludeMarkers: append([]string(nil), DefaultExcludeMarkers...),
	}
}

// Markers returns the configured exclusion markers, falling back to the
// defaults when the config cleared them.
func (c Config) Markers() []string {
	if len(c.ExcludeMarkers) == 0 {
		return DefaultExcludeMarkers
	}
	return c.ExcludeMarkers
}
