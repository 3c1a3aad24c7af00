package generator

import (
	"fmt"
	"strings"
)

// MaxQuestions caps how many popular titles go into one prompt.
const MaxQuestions = 20

const promptPreamble = "Generate one question for r/AskReddit that is inspired by these popular questions:\n\n"

// The missing space after "etc." is part of the wording the bot has always sent.
const promptTrailer = "Question can be humorous, technical or philosophical, etc.Try to be as original and creative as possible. Return only one question."

// BuildPrompt renders the generation prompt from the popular titles, keeping at most
// MaxQuestions of them in their original order.
func BuildPrompt(questions []string) string {
	if len(questions) > MaxQuestions {
		questions = questions[:MaxQuestions]
	}

	var sb strings.Builder
	sb.WriteString(promptPreamble)
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, q))
	}
	sb.WriteString(promptTrailer)
	return sb.String()
}
