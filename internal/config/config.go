// Package config layers respwin settings from defaults, an optional YAML
// config file, RESPWIN_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyDatabase    = "db"
	KeyBinWidth    = "bin_width"
	KeyStartColumn = "start_column"
	KeyEndColumn   = "end_column"
)

// Defaults.
const (
	DefaultDatabase = "respwin.db"
	DefaultBinWidth = int64(1_000_000) // 1ms in nanoseconds
)

const envPrefix = "RESPWIN"

// Config is the resolved configuration of one command invocation.
type Config struct {
	Database string `mapstructure:"db"`
	BinWidth int64  `mapstructure:"bin_width"`

	// Column names are empty unless configured so that a record file's own
	// start_column/end_column still applies.
	StartColumn string `mapstructure:"start_column"`
	EndColumn   string `mapstructure:"end_column"`
}

// flagKeys maps flag names onto setting keys.
var flagKeys = map[string]string{
	"db":           KeyDatabase,
	"bin-width":    KeyBinWidth,
	"start-column": KeyStartColumn,
	"end-column":   KeyEndColumn,
}

// New builds a viper instance with defaults, environment binding and the
// config file. An explicit configFile must exist; otherwise respwin.yaml is
// searched in the working directory and $HOME/.respwin and may be absent.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyDatabase, DefaultDatabase)
	v.SetDefault(KeyBinWidth, DefaultBinWidth)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only answers keys viper already knows about.
	for _, key := range []string{KeyStartColumn, KeyEndColumn} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName("respwin")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".respwin"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// BindFlags binds the known flags present in fs. Flags only override lower
// layers when set on the command line.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Decode resolves v into a validated Config.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks settings that no command can work without.
func (c Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("invalid config: %s must not be empty", KeyDatabase)
	}
	if c.BinWidth <= 0 {
		return fmt.Errorf("invalid config: %s must be positive, got %d", KeyBinWidth, c.BinWidth)
	}
	return nil
}

// Load is New, BindFlags and Decode in one call.
func Load(configFile string, fs *pflag.FlagSet) (Config, error) {
	v, err := New(configFile)
	if err != nil {
		return Config{}, err
	}
	if fs != nil {
		if err := BindFlags(v, fs); err != nil {
			return Config{}, err
		}
	}
	return Decode(v)
}
