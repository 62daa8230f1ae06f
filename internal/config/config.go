package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. CELLFN_LOG_LEVEL.
const EnvPrefix = "CELLFN"

// Config holds application configuration.
type Config struct {
	Log      LogConfig
	Registry RegistryConfig
	HTTP     HTTPConfig
	Locale   string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// RegistryConfig holds function registry settings.
type RegistryConfig struct {
	// Override lets a later registration replace an earlier one.
	Override bool
}

// HTTPConfig holds the serve command settings.
type HTTPConfig struct {
	Addr string
}

// Load reads configuration from defaults, an optional YAML file, env and flags,
// in increasing order of precedence. Flags are bound by their viper key
// (e.g. a flag named "log.level"); unknown flags are ignored.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("registry.override", false)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("locale", "en_US")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
