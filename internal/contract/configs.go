package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/powertrackhq/powertrack/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit      = 25
	MaxResultLimit          = 1000
	DefaultPrecision        = 1
	DefaultTimeoutSeconds   = 15
	DefaultRecentLimit      = 15
	DefaultRecentMaxAgeDays = 120
	DefaultCacheTTL         = "10m"
)

// DefaultAPIBase is the LiftingCast endpoint all meet and feed requests go to.
const DefaultAPIBase = "https://liftingcast.com"

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for one command invocation.
// This struct remains the "final, validated" config.
type Config struct {
	MeetRef string // bare meet id or liftingcast.com URL

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Units       schema.UnitSystem
	UseColors   bool
	Width       int // Terminal width override (0 = auto-detect)

	GenderFilter schema.Gender // empty means all genders
	Equip        schema.EquipmentClass
	LifterName   string
	Lift         schema.Lift // empty means all scored lifts

	CSVPath      string // load a meet from CSV instead of the live API
	ReferenceCSV string // historical results CSV for percentile building

	APIBase     string
	HTTPTimeout time.Duration

	RecentMaxAgeDays int

	Benchmark bool // annotate standings with percentile bands

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	CacheTTL       time.Duration

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	MeetRefStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Limit            int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Units            string `mapstructure:"units"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`
	Timeout          int    `mapstructure:"timeout"`
	APIBase          string `mapstructure:"api-base"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	CacheTTL         string `mapstructure:"cache-ttl"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from standingsCmd.Flags() ---
	CSVPath   string `mapstructure:"csv"`
	Gender    string `mapstructure:"gender"`
	Benchmark bool   `mapstructure:"benchmark"`

	// --- Fields from percentileCmd.Flags() ---
	Lifter       string `mapstructure:"lifter"`
	LiftName     string `mapstructure:"lift"`
	Equip        string `mapstructure:"equip"`
	ReferenceCSV string `mapstructure:"reference-csv"`

	// --- Fields from recentCmd.Flags() ---
	RecentDays int `mapstructure:"recent-days"`

	// --- Fields from historyMigrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processFilters(cfg, input); err != nil {
		return err
	}
	if err := processNetworking(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	cfg.MeetRef = strings.TrimSpace(input.MeetRefStr)
	cfg.CSVPath = strings.TrimSpace(input.CSVPath)
	cfg.ReferenceCSV = strings.TrimSpace(input.ReferenceCSV)
	cfg.LifterName = strings.TrimSpace(input.Lifter)
	cfg.Benchmark = input.Benchmark
	return nil
}

// validateSimpleInputs processes and validates display-side fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 3 {
		return fmt.Errorf("precision must be between 1 and 3 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 3. Units Validation ---
	switch strings.ToLower(input.Units) {
	case "", "kg":
		cfg.Units = schema.KGUnits
	case "lb", "lbs":
		cfg.Units = schema.LBSUnits
	default:
		return fmt.Errorf("invalid units '%s'. must be kg or lb", input.Units)
	}

	// --- 4. Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// processFilters validates the gender, equipment and lift selectors.
func processFilters(cfg *Config, input *ConfigRawInput) error {
	if g := strings.TrimSpace(input.Gender); g != "" {
		normalized := schema.NormalizeGender(g)
		if normalized != schema.Male && normalized != schema.Female {
			return fmt.Errorf("invalid gender '%s'. must be male or female", input.Gender)
		}
		cfg.GenderFilter = normalized
	}

	switch strings.ToLower(strings.TrimSpace(input.Equip)) {
	case "", "raw":
		cfg.Equip = schema.RawEquipment
	case "equipped":
		cfg.Equip = schema.EquippedEquipment
	default:
		return fmt.Errorf("invalid equip '%s'. must be raw or equipped", input.Equip)
	}

	switch strings.ToLower(strings.TrimSpace(input.LiftName)) {
	case "":
		cfg.Lift = ""
	case "squat":
		cfg.Lift = schema.SquatLift
	case "bench":
		cfg.Lift = schema.BenchLift
	case "deadlift", "dead":
		cfg.Lift = schema.DeadliftLift
	case "total":
		cfg.Lift = schema.TotalLift
	default:
		return fmt.Errorf("invalid lift '%s'. must be squat, bench, deadlift, total", input.LiftName)
	}

	if input.RecentDays < 0 {
		return fmt.Errorf("recent-days cannot be negative (received %d)", input.RecentDays)
	}
	cfg.RecentMaxAgeDays = input.RecentDays

	return nil
}

// processNetworking validates the API endpoint and timeout.
func processNetworking(cfg *Config, input *ConfigRawInput) error {
	cfg.APIBase = strings.TrimRight(strings.TrimSpace(input.APIBase), "/")
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if !strings.HasPrefix(cfg.APIBase, "http://") && !strings.HasPrefix(cfg.APIBase, "https://") {
		return fmt.Errorf("api-base must be an http(s) URL (received %q)", input.APIBase)
	}

	if input.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0 seconds (received %d)", input.Timeout)
	}
	cfg.HTTPTimeout = time.Duration(input.Timeout) * time.Second

	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	ttl, err := time.ParseDuration(input.CacheTTL)
	if err != nil {
		return fmt.Errorf("invalid cache-ttl '%s': %w", input.CacheTTL, err)
	}
	if ttl < 0 {
		return fmt.Errorf("cache-ttl cannot be negative (received %s)", ttl)
	}
	cfg.CacheTTL = ttl

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend != "" {
		if _, ok := schema.ValidCacheBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryDBConnect
		if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}

		// Cache and history must not share one SQLite file.
		if cfg.CacheBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
			cacheDBPath := cfg.CacheDBConnect
			if cacheDBPath == "" {
				cacheDBPath = GetCacheDBFilePath()
			}
			historyDBPath := cfg.HistoryDBConnect
			if historyDBPath == "" {
				historyDBPath = GetHistoryDBFilePath()
			}
			if cacheDBPath == historyDBPath {
				return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
			}
		}
	}

	return nil
}
