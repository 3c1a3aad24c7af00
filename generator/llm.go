package generator

import (
	"context"
	"errors"
)

// Completion parameters used for every question request.
const (
	MaxTokens   = 300
	Completions = 1
	Temperature = 0.8
)

// ErrNoChoices is returned when the model answers without any completion.
var ErrNoChoices = errors.New("llm: empty choices")

// LLMClient 抽象大模型客户端，便于替换/Mock。
type LLMClient interface {
	// Complete sends prompt as a single user message and returns the first choice.
	Complete(ctx context.Context, prompt string) (Message, error)
}

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
