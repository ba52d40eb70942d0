package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port   int    `yaml:"port"`
		WebDir string `yaml:"webDir"`
	} `yaml:"server"`

	AI struct {
		Provider       string `yaml:"provider"` // gemini | openai
		Model          string `yaml:"model"`
		APIKey         string `yaml:"apiKey"`
		BaseURL        string `yaml:"baseURL"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
		Language       string `yaml:"language"`
	} `yaml:"ai"`
}

// Load reads the yaml config file and applies environment overrides for
// secrets. GEMINI_API_KEY / OPENAI_API_KEY always win over the file so keys
// can stay out of version control.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	switch cfg.AI.Provider {
	case "", "gemini":
		cfg.AI.Provider = "gemini"
		if v := os.Getenv("GEMINI_API_KEY"); v != "" {
			cfg.AI.APIKey = v
		}
		if v := os.Getenv("GEMINI_MODEL"); v != "" {
			cfg.AI.Model = v
		}
	case "openai":
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			cfg.AI.APIKey = v
		}
	default:
		return nil, fmt.Errorf("unknown ai provider: %q", cfg.AI.Provider)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.AI.TimeoutSeconds <= 0 {
		cfg.AI.TimeoutSeconds = 60
	}
	return &cfg, nil
}

// InferenceTimeout is the bound on one call to the inference service.
func (c *Config) InferenceTimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}
