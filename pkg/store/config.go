package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultKey is the single key holding the serialized journal.
	DefaultKey = "moodEntries"
	// ConfigPathEnv overrides where .mood.yaml is searched for.
	ConfigPathEnv = "MOOD_CONFIG_PATH"
)

type Config interface {
	BasePath() string
	Key() string
	LogLevel() string
}

func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.mood.db")
	v.SetDefault("key", DefaultKey)
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".mood") // .yaml is implicit
	v.SetEnvPrefix("MOOD")
	v.AutomaticEnv()

	dirs := []string{"./"}
	if override := os.Getenv(ConfigPathEnv); override != "" {
		dirs = append([]string{override}, dirs...)
	}
	for _, dir := range dirs {
		if err := loadDotEnv(dir); err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:  path,
		Name:  v.GetString("key"),
		Level: v.GetString("log_level"),
		File:  v.ConfigFileUsed(),
	}, nil
}

// loadDotEnv reads MOOD_* settings from a .env file in dir, if there is one.
// Variables already set in the environment win.
func loadDotEnv(dir string) error {
	file := filepath.Join(dir, ".env")
	if _, err := os.Stat(file); err != nil {
		return nil
	}
	if err := godotenv.Load(file); err != nil {
		return fmt.Errorf("store: read %s: %w", file, err)
	}
	return nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Name  string `json:"key"`
	Level string `json:"log_level"`
	File  string `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Key() string {
	return f.Name
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

// ConfigFile reports which config file was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}
