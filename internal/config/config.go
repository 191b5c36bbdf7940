package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelCandidate is one entry in the ranked backend fallback list.
type ModelCandidate struct {
	Name        string  `yaml:"name"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// LLMConfig configures the hosted chat-completion endpoint and the ordered
// candidate list consumed by model selection.
type LLMConfig struct {
	BaseURL string           `yaml:"base_url"`
	KeyEnv  string           `yaml:"key_env"`
	Models  []ModelCandidate `yaml:"models"`
}

// EmbeddingConfig configures the OpenAI-compatible embedding endpoint.
type EmbeddingConfig struct {
	BaseURL string `yaml:"base_url"`
	KeyEnv  string `yaml:"key_env"`
	Model   string `yaml:"model"`
}

// RAGConfig configures ingestion, the persisted index and retrieval.
type RAGConfig struct {
	ChunkSize    int    `yaml:"chunk_size"`
	ChunkOverlap int    `yaml:"chunk_overlap"`
	TopK         int    `yaml:"top_k"`
	CorpusDir    string `yaml:"corpus_dir"`
	IndexPath    string `yaml:"index_path"`
	Collection   string `yaml:"collection"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	RAG       RAGConfig       `yaml:"rag"`
}

// Load reads a config from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			return cfg, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Key resolves the required LLM credential from the environment.
func (c *Config) Key() (string, error) {
	key := os.Getenv(c.LLM.KeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s not found in environment variables", c.LLM.KeyEnv)
	}
	return key, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8003"
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.LLM.KeyEnv == "" {
		cfg.LLM.KeyEnv = "GROQ_API_KEY"
	}
	if len(cfg.LLM.Models) == 0 {
		for _, name := range []string{
			"llama-3.3-70b-versatile",
			"llama-3.1-8b-instant",
			"llama3-8b-8192",
			"mixtral-8x7b-32768",
			"gemma2-9b-it",
			"llama3-groq-70b-8192-tool-use-preview",
		} {
			cfg.LLM.Models = append(cfg.LLM.Models, ModelCandidate{Name: name})
		}
	}
	for i := range cfg.LLM.Models {
		if cfg.LLM.Models[i].Temperature == 0 {
			cfg.LLM.Models[i].Temperature = 0.1
		}
		if cfg.LLM.Models[i].MaxTokens == 0 {
			cfg.LLM.Models[i].MaxTokens = 2048
		}
	}
	if cfg.Embedding.BaseURL == "" {
		cfg.Embedding.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Embedding.KeyEnv == "" {
		cfg.Embedding.KeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.RAG.ChunkSize == 0 {
		cfg.RAG.ChunkSize = 1000
	}
	if cfg.RAG.ChunkOverlap == 0 {
		cfg.RAG.ChunkOverlap = 200
	}
	if cfg.RAG.TopK == 0 {
		cfg.RAG.TopK = 3
	}
	if cfg.RAG.CorpusDir == "" {
		cfg.RAG.CorpusDir = "./data"
	}
	if cfg.RAG.IndexPath == "" {
		cfg.RAG.IndexPath = "./vector_store/index.chromem"
	}
	if cfg.RAG.Collection == "" {
		cfg.RAG.Collection = "legal_docs"
	}
}
