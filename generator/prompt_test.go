package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptRendersNumberedQuestions(t *testing.T) {
	got := BuildPrompt([]string{"Q1", "Q2"})

	want := promptPreamble + "1. Q1\n\n2. Q2\n\n" + promptTrailer
	assert.Equal(t, want, got)
	assert.True(t, strings.HasPrefix(got, "Generate one question for r/AskReddit"))
	assert.True(t, strings.HasSuffix(got, "Return only one question."))
}

func TestBuildPromptFixedText(t *testing.T) {
	got := BuildPrompt([]string{"Q1"})

	assert.Equal(t, "Generate one question for r/AskReddit that is inspired by these popular questions:\n\n"+
		"1. Q1\n\n"+
		"Question can be humorous, technical or philosophical, etc.Try to be as original and creative as possible. Return only one question.", got)
}

func TestBuildPromptEmpty(t *testing.T) {
	for _, in := range [][]string{nil, {}} {
		assert.Equal(t, promptPreamble+promptTrailer, BuildPrompt(in))
	}
}

func TestBuildPromptCapsAtMaxQuestions(t *testing.T) {
	questions := make([]string, 25)
	for i := range questions {
		questions[i] = fmt.Sprintf("question-%02d", i+1)
	}

	got := BuildPrompt(questions)

	for i := 1; i <= MaxQuestions; i++ {
		assert.Contains(t, got, fmt.Sprintf("%d. question-%02d\n\n", i, i))
	}
	for i := MaxQuestions + 1; i <= len(questions); i++ {
		assert.NotContains(t, got, fmt.Sprintf("question-%02d", i))
	}
	assert.Equal(t, MaxQuestions, strings.Count(got, "question-"))
	assert.Len(t, questions, 25, "input must not be modified")
}

func TestBuildPromptDeterministic(t *testing.T) {
	in := []string{"Why?", "How?", "What's the weirdest thing you've eaten?"}
	assert.Equal(t, BuildPrompt(in), BuildPrompt(in))
}
