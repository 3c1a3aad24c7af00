package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultUserAgent = "daily_question_bot v0.1"
	DefaultProvider  = "openai"
	DefaultModel     = "gpt-3.5-turbo"
)

// Config holds everything the bot needs for one process lifetime.
type Config struct {
	Reddit     RedditConfig `json:"reddit"`
	LLM        LLMConfig    `json:"llm"`
	ServerAddr string       `json:"server_addr,omitempty"`
}

// RedditConfig holds the script-app credentials for the forum account.
type RedditConfig struct {
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	UserAgent    string `json:"user_agent,omitempty"`
}

// LLMConfig 对应生成模块的模型配置。
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// Load reads envFile (if present) into the process environment, decodes jsonPath
// (if non-empty) and finally applies environment overrides and defaults.
// Credentials are not checked here; the collaborators report them as auth failures.
func Load(envFile, jsonPath string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if jsonPath != "" {
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return Config{}, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", jsonPath, err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	override(&cfg.Reddit.ClientID, "REDDIT_CLIENT_ID")
	override(&cfg.Reddit.ClientSecret, "REDDIT_CLIENT_SECRET")
	override(&cfg.Reddit.Username, "REDDIT_USERNAME")
	override(&cfg.Reddit.Password, "REDDIT_PASSWORD")
	override(&cfg.Reddit.UserAgent, "REDDIT_USER_AGENT")
	override(&cfg.LLM.Provider, "LLM_PROVIDER")
	override(&cfg.LLM.APIKey, "OPENAI_API_KEY")
	override(&cfg.LLM.Model, "OPENAI_MODEL")
	override(&cfg.LLM.BaseURL, "OPENAI_BASE_URL")
	override(&cfg.ServerAddr, "SERVER_ADDR")
}

func override(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Reddit.UserAgent == "" {
		cfg.Reddit.UserAgent = DefaultUserAgent
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = DefaultProvider
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
}
