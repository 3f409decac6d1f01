package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SEEDER"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Env        string           `yaml:"env"`        // Env is the current environment: local, development, production.
	API        APIConfig        `yaml:"api"`        // API is the service being seeded.
	Retry      RetryConfig      `yaml:"retry"`      // Retry bounds every POST.
	Seed       SeedConfig       `yaml:"seed"`       // Seed sizes the run.
	Monitoring MonitoringConfig `yaml:"monitoring"` // Monitoring exposes /metrics and /healthz while seeding.
	Postgres   PostgresConfig   `yaml:"postgres"`   // Postgres holds the optional run journal database.
}

// APIConfig struct holds the configuration details for the seeded HTTP API.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`        // BaseURL is the API root, e.g. `http://localhost:3009/api/dsm44`
	RequestTimeout time.Duration `yaml:"request_timeout"` // RequestTimeout bounds a single POST attempt.
	ProbeTimeout   time.Duration `yaml:"probe_timeout"`   // ProbeTimeout bounds the connectivity check.
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Delay       time.Duration `yaml:"delay"`
}

type SeedConfig struct {
	TotalEmployees int           `yaml:"total_employees"` // TotalEmployees is how many employees are created.
	Year           int           `yaml:"year"`            // Year the date sequence starts on.
	Days           int           `yaml:"days"`            // Days is the prefix of the year that gets records.
	RecordPause    time.Duration `yaml:"record_pause"`    // RecordPause is waited after every employee/date pair.
	Seed           uint64        `yaml:"seed"`            // Seed fixes the random source, 0 picks a random one.
}

type MonitoringConfig struct {
	Port int `yaml:"port"` // Port 0 disables the monitoring server.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
// An empty Host disables the run journal.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("api.base_url", "http://localhost:3009/api/dsm44")
	v.SetDefault("api.request_timeout", 30*time.Second)
	v.SetDefault("api.probe_timeout", 10*time.Second)
	v.SetDefault("retry.max_attempts", 5)
	v.SetDefault("retry.delay", time.Second)
	v.SetDefault("seed.total_employees", 300)
	v.SetDefault("seed.year", 2025)
	v.SetDefault("seed.days", 7)
	v.SetDefault("seed.record_pause", 100*time.Millisecond)
	v.SetDefault("seed.seed", 0)
	v.SetDefault("monitoring.port", 0)
	v.SetDefault("postgres.host", "")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db_name", "")
}

// Load builds the configuration from defaults, the optional YAML file at configPath
// and SEEDER_* environment variables, in increasing priority.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		API: APIConfig{
			BaseURL:        strings.TrimRight(v.GetString("api.base_url"), "/"),
			RequestTimeout: v.GetDuration("api.request_timeout"),
			ProbeTimeout:   v.GetDuration("api.probe_timeout"),
		},
		Retry: RetryConfig{
			MaxAttempts: v.GetInt("retry.max_attempts"),
			Delay:       v.GetDuration("retry.delay"),
		},
		Seed: SeedConfig{
			TotalEmployees: v.GetInt("seed.total_employees"),
			Year:           v.GetInt("seed.year"),
			Days:           v.GetInt("seed.days"),
			RecordPause:    v.GetDuration("seed.record_pause"),
			Seed:           v.GetUint64("seed.seed"),
		},
		Monitoring: MonitoringConfig{
			Port: v.GetInt("monitoring.port"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Dbname:   v.GetString("postgres.db_name"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad loads the configuration using CONFIG_PATH, which may be empty, and panics on failure.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func (c *Config) validate() error {
	switch {
	case c.API.BaseURL == "":
		return fmt.Errorf("%w: api.base_url is empty", ErrInvalid)
	case c.Retry.MaxAttempts < 1:
		return fmt.Errorf("%w: retry.max_attempts must be at least 1", ErrInvalid)
	case c.Seed.TotalEmployees < 0:
		return fmt.Errorf("%w: seed.total_employees must not be negative", ErrInvalid)
	case c.Seed.Days < 0 || c.Seed.Days > 365:
		return fmt.Errorf("%w: seed.days must be between 0 and 365", ErrInvalid)
	}

	return nil
}

// JournalEnabled reports whether runs should be recorded in PostgreSQL.
func (c *Config) JournalEnabled() bool {
	return c.Postgres.Host != ""
}

// EmployeesURL is used both for the connectivity probe and for employee creation.
func (a APIConfig) EmployeesURL() string {
	return a.BaseURL + "/empleados"
}

func (a APIConfig) AttendanceURL() string {
	return a.BaseURL + "/empleados/create-asistencia"
}

func (a APIConfig) ProductionURL() string {
	return a.BaseURL + "/empleados/create-produccion"
}
