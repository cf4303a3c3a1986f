package config

import (
	"net"
	"os"
	"strconv"

	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 5000
	DefaultLogDir     = "logs"
	DefaultMaxEntries = 1000
	DefaultLogLevel   = "info"

	configName = "system-info.conf"
	configType = "toml"
	configPath = "/etc"
	envPrefix  = "SYSINFO"

	maxPort = 65535
)

type Config struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	LogDir     string `mapstructure:"log_dir"`
	MaxEntries int    `mapstructure:"max_entries"`
	LogLevel   string `mapstructure:"log_level"`
	Debug      bool   `mapstructure:"debug"`
	Verbose    bool   `mapstructure:"verbose"`
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}

// Load reads configuration from defaults, the config file, environment
// variables and command line flags, in ascending order of precedence.
// Each call builds a fresh viper instance and flag set so it can be
// invoked repeatedly.
func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log_dir", DefaultLogDir)
	v.SetDefault("max_entries", DefaultMaxEntries)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)

	fs := pflag.NewFlagSet("sysinfod", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.String("host", DefaultHost, "Address to listen on")
	fs.Int("port", DefaultPort, "Port to listen on")
	fs.String("log-dir", DefaultLogDir, "Directory for metrics history files")
	fs.Int("max-entries", DefaultMaxEntries, "Maximum entries kept per history file")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	flagKeys := map[string]string{
		"host":        "host",
		"port":        "port",
		"log_dir":     "log-dir",
		"max_entries": "max-entries",
		"log_level":   "log-level",
		"debug":       "debug",
		"verbose":     "verbose",
	}
	for key, flagName := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigType(configType)
	if explicit := os.Getenv(envPrefix + "_CONFIG"); explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Port < 1 || c.Port > maxPort {
		return errFactory.WithData(errors.ErrInvalidPort, c.Port)
	}

	if c.MaxEntries < 1 {
		return errFactory.WithData(errors.ErrInvalidMaxEntries, c.MaxEntries)
	}

	if c.LogDir == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "log_dir must not be empty")
	}

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// Addr returns the host:port address the HTTP server should bind.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
