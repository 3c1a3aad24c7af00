// Package reddit is a small client for the two forum calls the bot makes:
// reading a subreddit's hot listing and submitting a self-text post.
package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"daily_question_bot/config"
)

const (
	DefaultAPIBaseURL = "https://oauth.reddit.com"
	DefaultTokenURL   = "https://www.reddit.com/api/v1/access_token"
)

var (
	// ErrRateLimited is returned when the forum answers 429.
	ErrRateLimited = errors.New("reddit: rate limited")
	// ErrNoSubmission is returned when submit succeeds at HTTP level but carries no post name.
	ErrNoSubmission = errors.New("reddit: submit returned no post")
)

// APIError describes a non-2xx response or a forum-level error list.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return "reddit: " + e.Message
	}
	return fmt.Sprintf("reddit: status %d: %s", e.StatusCode, e.Message)
}

// Options overrides endpoints and transport; the zero value talks to reddit.com.
type Options struct {
	APIBaseURL string
	TokenURL   string
	HTTPClient *http.Client
	Verbose    bool
	Logger     *log.Logger
}

// Client reads listings and submits posts on behalf of one script-app account.
// The access token is requested lazily on the first call.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	verbose   bool
	logger    *log.Logger
}

// New builds a Client from the account credentials. No network traffic happens here.
func New(ctx context.Context, cfg config.RedditConfig, opts Options) *Client {
	if opts.APIBaseURL == "" {
		opts.APIBaseURL = DefaultAPIBaseURL
	}
	if opts.TokenURL == "" {
		opts.TokenURL = DefaultTokenURL
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	base := opts.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: 60 * time.Second}
	}
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	// The token endpoint also rejects requests without a User-Agent.
	uaClient := &http.Client{
		Timeout:   base.Timeout,
		Transport: &userAgentTransport{base: transport, userAgent: userAgent},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, uaClient)

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  opts.TokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		Scopes: []string{"read", "submit"},
	}
	src := &passwordSource{ctx: ctx, conf: oauthCfg, username: cfg.Username, password: cfg.Password}

	httpClient := oauth2.NewClient(ctx, oauth2.ReuseTokenSource(nil, src))
	httpClient.Timeout = base.Timeout

	return &Client{
		baseURL:   strings.TrimRight(opts.APIBaseURL, "/"),
		userAgent: userAgent,
		http:      httpClient,
		verbose:   opts.Verbose,
		logger:    opts.Logger,
	}
}

func (c *Client) infof(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	c.logger.Printf("[INFO] [reddit] "+format, args...)
}

// passwordSource performs the resource-owner password grant used by script apps.
type passwordSource struct {
	ctx      context.Context
	conf     *oauth2.Config
	username string
	password string
}

func (s *passwordSource) Token() (*oauth2.Token, error) {
	tok, err := s.conf.PasswordCredentialsToken(s.ctx, s.username, s.password)
	if err != nil {
		return nil, fmt.Errorf("reddit: password grant: %w", err)
	}
	return tok, nil
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}

// Hot returns up to limit entries of the subreddit's hot listing, in ranking order.
func (c *Client) Hot(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("raw_json", "1")
	endpoint := fmt.Sprintf("%s/r/%s/hot?%s", c.baseURL, url.PathEscape(subreddit), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var data listingResp
	if err := c.do(req, &data); err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(data.Data.Children))
	for _, child := range data.Data.Children {
		posts = append(posts, child.Data.toPost())
	}
	c.infof("fetched %d hot posts from r/%s", len(posts), subreddit)
	return posts, nil
}

// SubmitSelfPost creates a self-text post. A nil error always comes with a non-empty Submission.Name.
func (c *Client) SubmitSelfPost(ctx context.Context, subreddit, title, text string) (Submission, error) {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("kind", "self")
	form.Set("sr", subreddit)
	form.Set("title", title)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/submit", strings.NewReader(form.Encode()))
	if err != nil {
		return Submission{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var data submitResp
	if err := c.do(req, &data); err != nil {
		return Submission{}, err
	}
	if len(data.JSON.Errors) > 0 {
		return Submission{}, &APIError{Message: formatErrors(data.JSON.Errors)}
	}
	if data.JSON.Data.Name == "" {
		return Submission{}, ErrNoSubmission
	}

	sub := Submission{ID: data.JSON.Data.ID, Name: data.JSON.Data.Name, URL: data.JSON.Data.URL}
	c.infof("submitted %s to r/%s: %s", sub.Name, subreddit, sub.URL)
	return sub, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w (retry after %q)", ErrRateLimited, resp.Header.Get("Retry-After"))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("reddit: decode %s: %w", req.URL.Path, err)
	}
	return nil
}

func formatErrors(errs [][]any) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		fields := make([]string, 0, len(e))
		for _, f := range e {
			if f == nil {
				continue
			}
			fields = append(fields, fmt.Sprint(f))
		}
		parts = append(parts, strings.Join(fields, ": "))
	}
	return strings.Join(parts, "; ")
}
