package contract

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/texttuner/texttuner/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit   = 25
	MaxResultLimit       = 1000
	DefaultPrecision     = 3
	DefaultMaxFileSizeMB = 10
)

// DefaultWorkers is the default number of concurrent workers for batch mode.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ErrUnknownStyle marks a request for a style outside the built-in table.
var ErrUnknownStyle = errors.New("unknown style")

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// MetricTargetRaw holds optional per-metric overrides from the YAML config
// file. Pointers distinguish "not set" from zero.
type MetricTargetRaw struct {
	Target    *float64 `mapstructure:"target"`
	Weight    *float64 `mapstructure:"weight"`
	Tolerance *float64 `mapstructure:"tolerance"`
}

// ProfilesRawInput holds per-style metric overrides from the YAML config file.
type ProfilesRawInput struct {
	Scientific map[string]MetricTargetRaw `mapstructure:"scientific"`
	Literary   map[string]MetricTargetRaw `mapstructure:"literary"`
	Official   map[string]MetricTargetRaw `mapstructure:"official-business"`
	Colloquial map[string]MetricTargetRaw `mapstructure:"colloquial"`
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	TextStr             string           `mapstructure:"text"`
	StyleStr            string           `mapstructure:"style"`
	OutputStr           string           `mapstructure:"output"`
	OutputFileStr       string           `mapstructure:"output-file"`
	DetailBool          bool             `mapstructure:"detail"`
	ExplainBool         bool             `mapstructure:"explain"`
	PrecisionInt        int              `mapstructure:"precision"`
	WorkersInt          int              `mapstructure:"workers"`
	LimitInt            int              `mapstructure:"limit"`
	WidthInt            int              `mapstructure:"width"`
	ColorStr            string           `mapstructure:"color"`
	POSDictStr          string           `mapstructure:"pos-dict"`
	FormalWordsStr      string           `mapstructure:"formal-words"`
	InformalWordsStr    string           `mapstructure:"informal-words"`
	RedisAddrStr        string           `mapstructure:"redis-addr"`
	HistoryBackendStr   string           `mapstructure:"history-backend"`
	HistoryDBConnectStr string           `mapstructure:"history-db-connect"`
	MaxFileSizeInt      int              `mapstructure:"max-file-size"`
	Profiles            ProfilesRawInput `mapstructure:"profiles"`

	// InputPathStr is the positional argument, which viper does not handle.
	InputPathStr string `mapstructure:"-"`
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	Text        string
	InputPath   string
	TargetStyle schema.StyleName

	Detail      bool
	Explain     bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Workers     int
	ResultLimit int
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	POSDictPath       string
	FormalWordsPath   string
	InformalWordsPath string
	RedisAddr         string // Custom lexicon store; empty disables

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	MaxFileSizeMB int

	// Profiles is the final style table: built-in defaults merged with
	// any YAML overrides.
	Profiles map[schema.StyleName]schema.StyleProfile
}

// Clone returns a shallow copy of the config. The profile table is shared;
// it is read-only after ProcessAndValidate.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Profile resolves a style name case-insensitively against the configured
// profile table. The error lists all valid style names.
func (c *Config) Profile(name string) (schema.StyleProfile, error) {
	style := schema.StyleName(strings.ToLower(strings.TrimSpace(name)))
	if profile, ok := c.Profiles[style]; ok {
		return profile, nil
	}
	return schema.StyleProfile{}, fmt.Errorf("%w %q: valid styles are %s",
		ErrUnknownStyle, name, strings.Join(validStyleNames(), ", "))
}

// validStyleNames returns the sorted list of valid style names for errors.
func validStyleNames() []string {
	names := make([]string, 0, len(schema.ValidStyles))
	for s := range schema.ValidStyles {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return names
}

// ProcessAndValidate converts raw input into the final validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Text = input.TextStr
	cfg.InputPath = input.InputPathStr
	cfg.OutputFile = input.OutputFileStr
	cfg.Detail = input.DetailBool
	cfg.Explain = input.ExplainBool
	cfg.POSDictPath = input.POSDictStr
	cfg.FormalWordsPath = input.FormalWordsStr
	cfg.InformalWordsPath = input.InformalWordsStr
	cfg.RedisAddr = input.RedisAddrStr
	cfg.HistoryDBConnect = input.HistoryDBConnectStr

	// Output mode
	output := schema.OutputMode(strings.ToLower(input.OutputStr))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: valid modes are text, json, csv", input.OutputStr)
	}
	cfg.Output = output

	// History backend
	backend := schema.DatabaseBackend(strings.ToLower(input.HistoryBackendStr))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend %q: valid backends are sqlite, mysql, postgresql, none", input.HistoryBackendStr)
	}
	cfg.HistoryBackend = backend

	// Numeric bounds
	cfg.Precision = input.PrecisionInt
	if cfg.Precision < 0 || cfg.Precision > 10 {
		return fmt.Errorf("invalid precision %d: must be between 0 and 10", cfg.Precision)
	}
	cfg.Workers = input.WorkersInt
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	cfg.ResultLimit = input.LimitInt
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	}
	if cfg.ResultLimit > MaxResultLimit {
		cfg.ResultLimit = MaxResultLimit
	}
	cfg.Width = input.WidthInt
	cfg.MaxFileSizeMB = input.MaxFileSizeInt
	if cfg.MaxFileSizeMB <= 0 {
		cfg.MaxFileSizeMB = DefaultMaxFileSizeMB
	}

	cfg.UseColors = parseBoolish(input.ColorStr, true)

	// Style table with overrides, then the requested style against it.
	cfg.Profiles = buildProfiles(&input.Profiles)
	if input.StyleStr != "" {
		profile, err := cfg.Profile(input.StyleStr)
		if err != nil {
			return err
		}
		cfg.TargetStyle = profile.Name
	}

	return nil
}

// ValidateDatabaseConnectionString performs basic sanity checks on the
// history database connection string for the given backend.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return errors.New("MySQL connection string must contain '@tcp(' for host:port specification")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.HasPrefix(connStr, "postgres://") && !strings.Contains(connStr, "host=") {
			return errors.New("PostgreSQL connection string must be a postgres:// URL or contain 'host='")
		}
	default:
		return fmt.Errorf("unsupported backend: %s", backend)
	}
	return nil
}

// parseBoolish interprets yes/no/true/false/1/0 with a fallback default.
func parseBoolish(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}

// buildProfiles merges YAML overrides over the built-in profile table.
func buildProfiles(raw *ProfilesRawInput) map[schema.StyleName]schema.StyleProfile {
	profiles := schema.GetDefaultProfiles()

	overrides := map[schema.StyleName]map[string]MetricTargetRaw{
		schema.ScientificStyle: raw.Scientific,
		schema.LiteraryStyle:   raw.Literary,
		schema.OfficialStyle:   raw.Official,
		schema.ColloquialStyle: raw.Colloquial,
	}

	for style, styleOverrides := range overrides {
		if len(styleOverrides) == 0 {
			continue
		}
		profile := profiles[style]
		for metricName, rawTarget := range styleOverrides {
			key := schema.MetricKey(strings.ToLower(metricName))
			target, ok := profile.TargetMetrics[key]
			if !ok {
				continue // unknown metric names are ignored, not errors
			}
			if rawTarget.Target != nil {
				target.Target = *rawTarget.Target
			}
			if rawTarget.Weight != nil && *rawTarget.Weight >= 0 {
				target.Weight = *rawTarget.Weight
			}
			if rawTarget.Tolerance != nil && *rawTarget.Tolerance >= 0 {
				target.Tolerance = *rawTarget.Tolerance
			}
			profile.TargetMetrics[key] = target
		}
		profiles[style] = profile
	}

	return profiles
}
