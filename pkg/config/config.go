package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Request   RequestConfig   `yaml:"request"`
	Translate TranslateConfig `yaml:"translate"`
	TTS       TTSConfig       `yaml:"tts"`
	Debug     bool            `yaml:"debug"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// DBConfig holds database settings.
type DBConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server LogSettings `yaml:"server"`
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// RequestConfig holds HTTP client settings for the free provider endpoints.
type RequestConfig struct {
	Timeout        Duration `yaml:"timeout"`
	ConnectTimeout Duration `yaml:"connect_timeout"`
	MaxRedirects   int      `yaml:"max_redirects"`
}

// MyMemoryConfig holds settings for the MyMemory translation API.
type MyMemoryConfig struct {
	BaseURL string `yaml:"base_url"`
	// Email raises the anonymous daily quota roughly tenfold when set.
	Email string `yaml:"email"`
}

// LibreTranslateConfig holds settings for LibreTranslate instances.
type LibreTranslateConfig struct {
	// Endpoints are tried in order; distinct hosts, same API shape.
	Endpoints []string `yaml:"endpoints"`
}

// TranslateConfig holds translation pipeline settings.
type TranslateConfig struct {
	MyMemory       MyMemoryConfig       `yaml:"mymemory"`
	LibreTranslate LibreTranslateConfig `yaml:"libretranslate"`
}

// GoogleTTSConfig holds settings for the unofficial Google Translate TTS endpoint.
type GoogleTTSConfig struct {
	BaseURL string `yaml:"base_url"`
}

// TTSConfig holds speech synthesis settings.
type TTSConfig struct {
	Google GoogleTTSConfig `yaml:"google"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "localhost:8090",
		},
		DB: DBConfig{
			Path: "./data/translations.db",
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
		},
		Request: RequestConfig{
			Timeout:        Duration(30 * time.Second),
			ConnectTimeout: Duration(10 * time.Second),
			MaxRedirects:   3,
		},
		Translate: TranslateConfig{
			MyMemory: MyMemoryConfig{
				BaseURL: "https://api.mymemory.translated.net/get",
			},
			LibreTranslate: LibreTranslateConfig{
				Endpoints: []string{
					"https://libretranslate.com/translate",
					"https://translate.argosopentech.com/translate",
				},
			},
		},
		TTS: TTSConfig{
			Google: GoogleTTSConfig{
				BaseURL: "https://translate.google.com/translate_tts",
			},
		},
		Debug: false,
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does NOT
// save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		// Env fallback for the quota uplift email; never saved back to disk.
		if cfg.Translate.MyMemory.Email == "" {
			if email := os.Getenv("ADMIN_EMAIL"); email != "" {
				cfg.Translate.MyMemory.Email = email
			}
		}

		return cfg, nil
	}

	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# TTS Translator Configuration
# ----------------------------
# Duration units: ns, us (or µs), ms, s, m, h, d (day), w (week)

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault writes a default config file, refusing to overwrite.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return Save(path, DefaultConfig())
}
