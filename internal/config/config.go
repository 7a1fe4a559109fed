package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Glossary    GlossaryConfig    `yaml:"glossary"`
	Translation TranslationConfig `yaml:"translation"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type GlossaryConfig struct {
	// ChunkSize is the maximum unit size, in characters, handed to one
	// inference call.
	ChunkSize int `yaml:"chunk_size"`
	// MaxTerms caps the aggregated output.
	MaxTerms int `yaml:"max_terms"`
	// OverRequestBuffer is added to the per-chunk term request so that
	// enough candidates survive cross-chunk deduplication.
	OverRequestBuffer int `yaml:"over_request_buffer"`
}

type TranslationConfig struct {
	SourceLanguage  string   `yaml:"source_language"`
	TargetLanguages []string `yaml:"target_languages"`
}

type PathsConfig struct {
	Inbox    string `yaml:"inbox"`
	Storage  string `yaml:"storage"`
	Temp     string `yaml:"temp"`
	Database string `yaml:"database"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys requires at least one key")
	}
	if c.Translation.SourceLanguage == "" {
		return fmt.Errorf("translation.source_language is required")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Glossary.ChunkSize == 0 {
		c.Glossary.ChunkSize = 5000
	}
	if c.Glossary.MaxTerms == 0 {
		c.Glossary.MaxTerms = 50
	}
	if c.Glossary.OverRequestBuffer == 0 {
		c.Glossary.OverRequestBuffer = 5
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Storage == "" {
		c.Paths.Storage = "data/storage"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.Database == "" {
		c.Paths.Database = "data/pipeline.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
