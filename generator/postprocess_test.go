package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostProcess(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "What's your favorite bug?", "What's your favorite bug?"},
		{"surrounding whitespace", "\n  What's your favorite bug?  \n", "What's your favorite bug?"},
		{"quoted", `"What would you name a boat?"`, "What would you name a boat?"},
		{"smart quotes", "“What would you name a boat?”", "What would you name a boat?"},
		{"inner quotes kept", `What does "home" mean to you?`, `What does "home" mean to you?`},
		{"bold", "**What is the best smell?**", "What is the best smell?"},
		{"bold and quoted", `**"What is the best smell?"**`, "What is the best smell?"},
		{"heading", "# What is the best smell?", "What is the best smell?"},
		{"soft wrap", "What is the\nbest smell?", "What is the best smell?"},
		{"trailing note dropped", "What is the best smell?\n\nThis question is inspired by #3.", "What is the best smell?"},
		{"empty", "   ", ""},

		// text that looks like markup but is part of the question
		{"literal asterisks", "Is 2*3*4 bigger than 5*5?", "Is 2*3*4 bigger than 5*5?"},
		{"inline html", "What is the <div> of your life?", "What is the <div> of your life?"},
		{"leading year", "1984. What would Orwell think of today?", "1984. What would Orwell think of today?"},
		{"numbered reply kept verbatim", "1. What is the best smell?", "1. What is the best smell?"},
		{"hashtag is not a heading", "#1 thing you'd change about your city?", "#1 thing you'd change about your city?"},
		{"underscores", "Is snake_case or camelCase_ better?", "Is snake_case or camelCase_ better?"},

		// lead-in blocks before the question
		{"lead-in paragraph", "Here's one:\n\nWhat is your favorite bug?", "What is your favorite bug?"},
		{"lead-in heading", "## New question\n\n**What is your favorite bug?**", "What is your favorite bug?"},
		{"no question mark uses whole reply", "Tell us about\n\nyour worst haircut.", "Tell us about your worst haircut."},
		{"code fence content", "```\nwhy?\n```", "why?"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, PostProcess(c.raw))
		})
	}
}
