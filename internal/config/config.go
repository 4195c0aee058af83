package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddr               = ":8000"
	defaultThreshold          = 0.65
	defaultEmpathyProbability = 0.4
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Console   ConsoleConfig   `yaml:"console"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatasetConfig selects the knowledge-base source. PostgresDSN takes
// precedence over Path when both are set.
type DatasetConfig struct {
	Path          string `yaml:"path"`
	PostgresDSN   string `yaml:"postgres_dsn"`
	PostgresTable string `yaml:"postgres_table"`
	PostgresDebug bool   `yaml:"postgres_debug"`
}

type EmbeddingConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// RetrievalConfig holds the two policy knobs of the matching pipeline.
// Threshold separates confident matches from fallbacks (score >= T wins);
// EmpathyProbability is the chance of an empathetic prefix on semantic replies.
type RetrievalConfig struct {
	Threshold float32 `yaml:"threshold"`
	// Pointer so an explicit 0 survives defaulting.
	EmpathyProbability *float64 `yaml:"empathy_probability"`
	CacheDir           string   `yaml:"cache_dir"`
}

func (r RetrievalConfig) EmpathyP() float64 {
	if r.EmpathyProbability == nil {
		return defaultEmpathyProbability
	}
	return *r.EmpathyProbability
}

type ConsoleConfig struct {
	TypingDelayMS int `yaml:"typing_delay_ms"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Retrieval.Threshold == 0 {
		c.Retrieval.Threshold = defaultThreshold
	}
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = "ollama"
	}
}
