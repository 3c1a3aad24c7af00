package generator

import "context"

// DefaultMockQuestion is what MockLLM answers when Question is empty.
const DefaultMockQuestion = "If your pet could leave one online review of you, what would it say?"

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
type MockLLM struct {
	Question string
}

func (m MockLLM) Complete(_ context.Context, _ string) (Message, error) {
	q := m.Question
	if q == "" {
		q = DefaultMockQuestion
	}
	return Message{Role: "assistant", Content: q}, nil
}
