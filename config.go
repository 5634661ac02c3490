package llmagent

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the agent reads from the environment, .env files
// and an optional config file.
type Config struct {
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	BaseURL       string `mapstructure:"base_url"`
	Model         string `mapstructure:"model"`
	MaxIterations int    `mapstructure:"max_iterations"`
	ImagesDir     string `mapstructure:"images_dir"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
}

// LoadConfig loads .env files (".env" when none are given), then layers
// defaults, the config file at path (if any) and AGENT_* environment
// variables. The credential always comes from OPENAI_API_KEY.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	v := viper.New()
	v.SetDefault("openai_api_key", "")
	v.SetDefault("base_url", "")
	v.SetDefault("model", DefaultModel)
	v.SetDefault("max_iterations", DefaultMaxIterations)
	v.SetDefault("images_dir", "generated_images")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("agent")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("openai_api_key", "OPENAI_API_KEY"); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv("base_url", "AGENT_BASE_URL", "OPENAI_BASE_URL"); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate reports a missing credential or an unusable iteration budget.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OpenAIAPIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations)
	}
	return nil
}
