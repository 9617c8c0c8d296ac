package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all service settings. Values are layered: defaults, then an
// optional YAML file named by CONFIG_FILE, then environment variables, then
// explicitly set command-line flags.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Dataset files. Relative file names resolve against DataDir.
	DataDir      string
	FlightsFile  string
	AirlinesFile string
	AirportsFile string

	ChartCacheSize int
	DefaultHour    int

	// ConfigFile is the YAML file that was loaded, if any.
	ConfigFile string
}

var defaults = map[string]any{
	"http_addr":        ":8080",
	"log_level":        "info",
	"log_format":       "json",
	"shutdown_timeout": "10s",
	"data_dir":         "data",
	"flights_file":     "flights.csv",
	"airlines_file":    "airlines.csv",
	"airports_file":    "airports.csv",
	"chart_cache_size": "256",
	"default_hour":     "12",
}

// Load reads configuration from defaults, CONFIG_FILE and the environment.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags is Load plus a final layer of command-line flags. Only flags
// the user changed are applied; flag names are the config keys in kebab case
// (--data-dir sets DATA_DIR).
func LoadWithFlags(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	configFile := os.Getenv("CONFIG_FILE")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			configFile = f.Value.String()
		}
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !f.Changed {
				return "", nil
			}
			if _, known := defaults[key]; !known {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	return build(k, configFile)
}

// envKey maps an environment variable onto a config key, ignoring variables
// that are not settings.
func envKey(name string) string {
	key := strings.ToLower(name)
	if _, ok := defaults[key]; !ok {
		return ""
	}
	return key
}

func build(k *koanf.Koanf, configFile string) (*Config, error) {
	shutdownTimeout, err := time.ParseDuration(k.String("shutdown_timeout"))
	if err != nil || shutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}

	cacheSize, err := strconv.Atoi(k.String("chart_cache_size"))
	if err != nil || cacheSize < 0 {
		return nil, errors.New("invalid CHART_CACHE_SIZE")
	}

	hour, err := strconv.Atoi(k.String("default_hour"))
	if err != nil || hour < 0 || hour > 23 {
		return nil, errors.New("DEFAULT_HOUR must be between 0 and 23")
	}

	cfg := &Config{
		HTTPAddr:        k.String("http_addr"),
		LogLevel:        strings.ToLower(k.String("log_level")),
		LogFormat:       strings.ToLower(k.String("log_format")),
		ShutdownTimeout: shutdownTimeout,
		DataDir:         k.String("data_dir"),
		FlightsFile:     k.String("flights_file"),
		AirlinesFile:    k.String("airlines_file"),
		AirportsFile:    k.String("airports_file"),
		ChartCacheSize:  cacheSize,
		DefaultHour:     hour,
		ConfigFile:      configFile,
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	if cfg.FlightsFile == "" {
		return nil, errors.New("FLIGHTS_FILE is required")
	}
	if cfg.AirlinesFile == "" {
		return nil, errors.New("AIRLINES_FILE is required")
	}
	if cfg.AirportsFile == "" {
		return nil, errors.New("AIRPORTS_FILE is required")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

// FlightsPath returns the flights CSV location.
func (c *Config) FlightsPath() string { return c.resolve(c.FlightsFile) }

// AirlinesPath returns the airlines CSV location.
func (c *Config) AirlinesPath() string { return c.resolve(c.AirlinesFile) }

// AirportsPath returns the airports CSV location.
func (c *Config) AirportsPath() string { return c.resolve(c.AirportsFile) }

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
