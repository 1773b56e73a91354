package config

import (
	"fmt"
	"time"
)

type Config struct {
	Mode        string            `yaml:"mode"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Merge       MergeConfig       `yaml:"merge"`
	LLM         LLMConfig         `yaml:"llm"`
	Embedding   EmbeddingConfig   `yaml:"embedding"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`

	// Secrets are read from the environment, never from YAML.
	Secrets Secrets `yaml:"-"`
}

type ChunkingConfig struct {
	Strategy            string `yaml:"strategy"`
	TargetWords         int    `yaml:"target_words"`
	MinChunkSize        int    `yaml:"min_chunk_size"`
	MaxChunkSize        int    `yaml:"max_chunk_size"`
	OverlapSize         int    `yaml:"overlap_size"`
	BufferSize          int    `yaml:"buffer_size"`
	BreakpointThreshold int    `yaml:"breakpoint_threshold"`
}

type AnalysisConfig struct {
	MaxWorkers     int           `yaml:"max_workers"`
	CallTimeout    time.Duration `yaml:"call_timeout"`
	MergeTimeout   time.Duration `yaml:"merge_timeout"`
	PerChunkPrompt string        `yaml:"per_chunk_prompt"`
	MergePrompt    string        `yaml:"merge_prompt"`
}

type MergeConfig struct {
	Strategy   string `yaml:"strategy"`
	WordBudget int    `yaml:"word_budget"`
}

type LLMConfig struct {
	Provider          string  `yaml:"provider"`
	Model             string  `yaml:"model"`
	BaseURL           string  `yaml:"base_url"`
	Temperature       float32 `yaml:"temperature"`
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type EmbeddingConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
	Database string `yaml:"database"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type Secrets struct {
	GeminiKeys []string
	OpenAIKey  string
}

const (
	ModeBrief     = "brief"
	ModeQuestions = "questions"

	StrategyFixed    = "fixed"
	StrategySemantic = "semantic"

	MergeModel = "model"
	MergeRules = "rules"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Mode == "" {
		c.Mode = ModeBrief
	}
	if c.Mode != ModeBrief && c.Mode != ModeQuestions {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeBrief, ModeQuestions, c.Mode)
	}

	if c.Chunking.Strategy == "" {
		c.Chunking.Strategy = StrategyFixed
	}
	if c.Chunking.Strategy != StrategyFixed && c.Chunking.Strategy != StrategySemantic {
		return fmt.Errorf("chunking.strategy must be %q or %q, got %q", StrategyFixed, StrategySemantic, c.Chunking.Strategy)
	}
	if c.Chunking.TargetWords == 0 {
		c.Chunking.TargetWords = 1200
	}
	if c.Chunking.MinChunkSize == 0 {
		c.Chunking.MinChunkSize = 500
	}
	if c.Chunking.MaxChunkSize == 0 {
		c.Chunking.MaxChunkSize = 3000
	}
	if c.Chunking.MinChunkSize > c.Chunking.MaxChunkSize {
		return fmt.Errorf("chunking.min_chunk_size (%d) exceeds chunking.max_chunk_size (%d)", c.Chunking.MinChunkSize, c.Chunking.MaxChunkSize)
	}
	if c.Chunking.OverlapSize == 0 {
		c.Chunking.OverlapSize = 100
	}

	if c.Analysis.MaxWorkers == 0 {
		c.Analysis.MaxWorkers = 4
	}
	if c.Analysis.CallTimeout == 0 {
		c.Analysis.CallTimeout = 60 * time.Second
	}
	if c.Analysis.MergeTimeout == 0 {
		c.Analysis.MergeTimeout = 90 * time.Second
	}

	if c.Merge.Strategy == "" {
		c.Merge.Strategy = MergeModel
	}
	if c.Merge.Strategy != MergeModel && c.Merge.Strategy != MergeRules {
		return fmt.Errorf("merge.strategy must be %q or %q, got %q", MergeModel, MergeRules, c.Merge.Strategy)
	}
	if c.Merge.WordBudget == 0 {
		c.Merge.WordBudget = 800
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGemini
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case ProviderOpenAI:
			c.LLM.Model = "gpt-4o-mini"
		default:
			c.LLM.Model = "gemini-2.5-flash"
		}
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1500
	}
	if c.LLM.RequestsPerSecond == 0 {
		c.LLM.RequestsPerSecond = 2
	}
	if c.LLM.Burst == 0 {
		c.LLM.Burst = 4
	}

	if c.Embedding.Provider == "" {
		c.Embedding.Provider = c.LLM.Provider
	}
	if c.Embedding.Model == "" {
		switch c.Embedding.Provider {
		case ProviderOpenAI:
			c.Embedding.Model = "text-embedding-3-small"
		default:
			c.Embedding.Model = "text-embedding-004"
		}
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.Database == "" {
		c.Paths.Database = "data/runs.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// Overlap returns the overlap size in characters; a negative setting disables overlap.
func (c ChunkingConfig) Overlap() int {
	if c.OverlapSize < 0 {
		return 0
	}
	return c.OverlapSize
}

// HasCompletionKey reports whether the configured provider has credentials.
func (c *Config) HasCompletionKey() bool {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		return c.Secrets.OpenAIKey != ""
	default:
		return len(c.Secrets.GeminiKeys) > 0
	}
}
