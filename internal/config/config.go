package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// TreeSource points at the pre-built documentation tree. It may be a local
// file path or an http(s) URL.
type TreeSource struct {
	Location string `mapstructure:"-" validate:"required"`
}

// IsRemote reports whether the tree must be fetched over HTTP.
func (s TreeSource) IsRemote() bool {
	return strings.HasPrefix(s.Location, "http://") || strings.HasPrefix(s.Location, "https://")
}

type SiteConfig struct {
	Title string     `mapstructure:"title" validate:"required"`
	Tree  TreeSource `mapstructure:"tree"`
}

type ServerConfig struct {
	Listen             string `mapstructure:"listen" validate:"required,hostname_port"`
	ReadTimeoutSeconds int    `mapstructure:"read_timeout_seconds" validate:"min=1"`
	// LogPath overrides where `serve --log-file` writes. Empty uses LogPath().
	LogPath            string `mapstructure:"log_path"`
}

type CacheConfig struct {
	Markdown bool `mapstructure:"markdown"`
}

type IndexConfig struct {
	// Path of the duckdb file. Empty keeps the index in memory.
	Path string `mapstructure:"path"`
}

type Config struct {
	Site   SiteConfig   `mapstructure:"site"`
	Server ServerConfig `mapstructure:"server"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Index  IndexConfig  `mapstructure:"index"`
}

// CacheBase returns the base cache directory for apidocs.
// Checks XDG_CACHE_HOME, then ~/.cache, then /tmp/apidocs as fallback.
func CacheBase() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "apidocs")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".cache", "apidocs")
	}
	return filepath.Join(os.TempDir(), "apidocs")
}

// CASDir returns the path to the rendered-markdown content store.
func CASDir() string {
	return filepath.Join(CacheBase(), "cas")
}

// LogPath returns the default path of the server's log file.
func LogPath() string {
	return filepath.Join(CacheBase(), "server.log")
}

// ServerLogPath resolves the log file shared by `serve --log-file` and
// `logs`: server.log_path when set, LogPath() otherwise.
func ServerLogPath() string {
	if p := viper.GetString("server.log_path"); p != "" {
		return expandHome(p)
	}
	return LogPath()
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "apidocs"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "apidocs"))
	}

	viper.SetDefault("site.title", "API Reference")
	viper.SetDefault("site.tree", "")
	viper.SetDefault("server.listen", "127.0.0.1:3000")
	viper.SetDefault("server.read_timeout_seconds", 10)
	viper.SetDefault("server.log_path", "")
	viper.SetDefault("cache.markdown", true)
	viper.SetDefault("index.path", "")

	viper.SetEnvPrefix("APIDOCS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func stringToTreeSourceHookFunc() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(TreeSource{}) {
			return data, nil
		}
		if f.Kind() == reflect.String {
			return TreeSource{Location: expandHome(data.(string))}, nil
		}
		return data, nil
	}
}

// Load reads the config file and environment, then validates the result.
func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}
	return Decode(viper.AllSettings())
}

// Decode turns a raw settings map into a validated Config.
func Decode(settings map[string]interface{}) (*Config, error) {
	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToTreeSourceHookFunc(),
		Result:     &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, p[2:])
	}
	return p
}
