package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies defaults and pulls secrets from the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.Secrets = SecretsFromEnv()
	return &cfg, nil
}

// SecretsFromEnv collects provider keys. GEMINI_API_KEYS holds a comma-separated rotation list.
func SecretsFromEnv() Secrets {
	var s Secrets
	for _, k := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			s.GeminiKeys = append(s.GeminiKeys, k)
		}
	}
	if k := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); k != "" && len(s.GeminiKeys) == 0 {
		s.GeminiKeys = []string{k}
	}
	s.OpenAIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	return s
}
