package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath        = "~/.remap.db"
	DefaultKey         = "remap.tree"
	DefaultNotifyDelay = time.Second
)

// Config is the resolved runtime configuration.
type Config interface {
	BasePath() string
	TreeKey() string
	SiblingSelection() string
	NotifyDelay() time.Duration
	LogLevel() string
	LogFile() string
}

// LoadConfig reads .remap.yaml from $REMAP_CONFIG_PATH, the working directory
// or $HOME, then applies REMAP_* environment overrides. A missing file is
// fine.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("sibling-selection", "keep")
	v.SetDefault("notify-delay", DefaultNotifyDelay)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-file", "")

	v.SetConfigName(".remap") // .yaml is implicit
	v.SetEnvPrefix("REMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("REMAP_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	delay := v.GetDuration("notify-delay")
	if delay <= 0 {
		delay = DefaultNotifyDelay
	}

	return &fileConfig{
		Path:      path,
		Key:       v.GetString("key"),
		Sibling:   v.GetString("sibling-selection"),
		Delay:     delay,
		Level:     v.GetString("log-level"),
		LogTarget: v.GetString("log-file"),
	}, nil
}

type fileConfig struct {
	Path      string        `json:"path"`
	Key       string        `json:"key"`
	Sibling   string        `json:"sibling-selection"`
	Delay     time.Duration `json:"notify-delay"`
	Level     string        `json:"log-level"`
	LogTarget string        `json:"log-file"`
}

func (f *fileConfig) BasePath() string           { return f.Path }
func (f *fileConfig) SiblingSelection() string   { return f.Sibling }
func (f *fileConfig) NotifyDelay() time.Duration { return f.Delay }
func (f *fileConfig) LogLevel() string           { return f.Level }
func (f *fileConfig) LogFile() string            { return f.LogTarget }

func (f *fileConfig) TreeKey() string {
	if f.Key == "" {
		return DefaultKey
	}
	return f.Key
}

// StaticConfig is a Config built in code, for tests and embedding.
type StaticConfig struct {
	Path    string
	Key     string
	Sibling string
	Delay   time.Duration
	Level   string
	LogTo   string
}

func (s StaticConfig) BasePath() string         { return s.Path }
func (s StaticConfig) SiblingSelection() string { return s.Sibling }
func (s StaticConfig) LogLevel() string         { return s.Level }
func (s StaticConfig) LogFile() string          { return s.LogTo }

func (s StaticConfig) TreeKey() string {
	if s.Key == "" {
		return DefaultKey
	}
	return s.Key
}

func (s StaticConfig) NotifyDelay() time.Duration {
	if s.Delay <= 0 {
		return DefaultNotifyDelay
	}
	return s.Delay
}
