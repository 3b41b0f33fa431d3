package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config selects and locates a Store.
type Config interface {
	BasePath() string
	Driver() string
}

// Settings is the full daybook configuration. It satisfies Config.
type Settings struct {
	Path       string        `mapstructure:"path"`
	DriverName string        `mapstructure:"driver"`
	Buffer     int           `mapstructure:"buffer"`
	LookAhead  int           `mapstructure:"look_ahead"`
	MinWindow  int           `mapstructure:"min_window"`
	WeekStart  string        `mapstructure:"week_start"`
	Pivot      string        `mapstructure:"pivot"`
	Announce   time.Duration `mapstructure:"announce"`
	Locale     string        `mapstructure:"locale"`
	LogFile    string        `mapstructure:"log_file"`
	LogLevel   string        `mapstructure:"log_level"`
}

// BasePath is the expanded storage directory.
func (s *Settings) BasePath() string {
	return s.Path
}

// Driver names the storage backend.
func (s *Settings) Driver() string {
	return s.DriverName
}

// SetDefaults registers every configuration default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("path", "~/.daybook")
	v.SetDefault("driver", DriverDiskv)
	v.SetDefault("buffer", 12)
	v.SetDefault("look_ahead", 2)
	v.SetDefault("min_window", 10)
	v.SetDefault("week_start", "sunday")
	v.SetDefault("pivot", "today")
	v.SetDefault("announce", 300*time.Millisecond)
	v.SetDefault("locale", "en")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
}

// LoadConfig reads .daybook.yaml from $DAYBOOK_CONFIG_PATH, the working
// directory or $HOME, with DAYBOOK_* environment overrides, using the global
// viper instance so that bound command flags take part.
func LoadConfig() (*Settings, error) {
	return ReadConfig(viper.GetViper())
}

// ReadConfig loads the configuration through v.
func ReadConfig(v *viper.Viper) (*Settings, error) {
	SetDefaults(v)
	v.SetConfigName(".daybook") // .yaml is implicit
	v.SetEnvPrefix("DAYBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	path, err := homedir.Expand(s.Path)
	if err != nil {
		return nil, fmt.Errorf("store: expand %q: %w", s.Path, err)
	}
	s.Path = path
	if s.LogFile != "" {
		if s.LogFile, err = homedir.Expand(s.LogFile); err != nil {
			return nil, fmt.Errorf("store: expand %q: %w", s.LogFile, err)
		}
	}
	return s, nil
}

// DefaultLogFile is the log location when none is configured.
func DefaultLogFile() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "daybook", "daybook.log"), nil
}
