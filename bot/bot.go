// Package bot runs one fetch → generate → publish cycle against a fixed subreddit.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"daily_question_bot/generator"
	"daily_question_bot/reddit"
)

// Subreddit is the community the bot reads from and posts to.
const Subreddit = "AskReddit"

// HotLimit is how many hot entries are requested; the first one is the sticky.
const HotLimit = 11

const (
	BodyGenerationFailed = "An error occurred while generating the question"
	BodyFailed           = "An error occurred while posting the question"
)

// ListingReader reads a subreddit's hot listing.
type ListingReader interface {
	Hot(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error)
}

// QuestionGenerator turns popular titles into one new question.
type QuestionGenerator interface {
	Generate(ctx context.Context, questions []string) (generator.Message, error)
}

// Submitter publishes a self-text post.
type Submitter interface {
	SubmitSelfPost(ctx context.Context, subreddit, title, text string) (reddit.Submission, error)
}

// Outcome tags how an invocation ended.
type Outcome string

const (
	OutcomeSuccess         Outcome = "success"
	OutcomeSetupError      Outcome = "setup_error"
	OutcomeFetchError      Outcome = "fetch_error"
	OutcomeGenerationError Outcome = "generation_error"
	OutcomeEmptyGeneration Outcome = "empty_generation"
	OutcomePublishError    Outcome = "publish_error"
)

// Result is what one invocation reports to its trigger. Err is for logs and
// in-process callers only; Body never contains it.
type Result struct {
	StatusCode int
	Body       string
	Outcome    Outcome
	Question   string
	Submission reddit.Submission
	Err        error
}

// OK reports whether the question was posted.
func (r Result) OK() bool { return r.Outcome == OutcomeSuccess }

// Fail builds the failure result for outcome.
func Fail(outcome Outcome, err error) Result {
	body := BodyFailed
	if outcome == OutcomeEmptyGeneration {
		body = BodyGenerationFailed
	}
	return Result{
		StatusCode: http.StatusInternalServerError,
		Body:       body,
		Outcome:    outcome,
		Err:        err,
	}
}

type Bot struct {
	listings  ListingReader
	generator QuestionGenerator
	submitter Submitter
	logger    *log.Logger
}

func New(listings ListingReader, gen QuestionGenerator, submitter Submitter, logger *log.Logger) (*Bot, error) {
	if listings == nil || gen == nil || submitter == nil {
		return nil, errors.New("bot requires a listing reader, a generator and a submitter")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Bot{listings: listings, generator: gen, submitter: submitter, logger: logger}, nil
}

// Run executes one invocation. Steps run strictly in order and nothing is retried.
func (b *Bot) Run(ctx context.Context) Result {
	questions, err := PopularQuestions(ctx, b.listings, Subreddit)
	if err != nil {
		return b.fail(OutcomeFetchError, fmt.Errorf("fetch hot posts: %w", err))
	}
	b.logger.Printf("[bot] fetched %d popular questions from r/%s", len(questions), Subreddit)

	msg, err := b.generator.Generate(ctx, questions)
	switch {
	case errors.Is(err, generator.ErrNoChoices):
		return b.fail(OutcomeEmptyGeneration, err)
	case err != nil:
		return b.fail(OutcomeGenerationError, fmt.Errorf("generate question: %w", err))
	case strings.TrimSpace(msg.Content) == "":
		return b.fail(OutcomeEmptyGeneration, errors.New("generated question is empty"))
	}
	question := msg.Content

	sub, err := b.submitter.SubmitSelfPost(ctx, Subreddit, question, "")
	if err != nil {
		return b.fail(OutcomePublishError, fmt.Errorf("submit question: %w", err))
	}
	b.logger.Printf("[bot] Question posted successfully: %s %s", sub.Name, sub.URL)

	return Result{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf(`Question: "%s" posted successfully`, question),
		Outcome:    OutcomeSuccess,
		Question:   question,
		Submission: sub,
	}
}

func (b *Bot) fail(outcome Outcome, err error) Result {
	b.logger.Printf("[ERROR] [bot] %s: %v", outcome, err)
	return Fail(outcome, err)
}
