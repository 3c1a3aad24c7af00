package generator

import (
	"context"
	"errors"
)

// Agent 负责根据热门问题生成一个新问题。
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Generate builds the prompt from the popular questions, asks the model and cleans the reply.
// ErrNoChoices from the client is passed through untouched.
func (a *Agent) Generate(ctx context.Context, questions []string) (Message, error) {
	raw, err := a.llm.Complete(ctx, BuildPrompt(questions))
	if err != nil {
		return Message{}, err
	}
	raw.Content = PostProcess(raw.Content)
	return raw, nil
}
