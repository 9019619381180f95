// Package judge calls an OpenAI-compatible chat model to decide whether
// a commit or pull request satisfies a natural-language rule, to
// summarize oversized diffs, and to suggest search keywords from a
// requirement description.
package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel         = "gpt-4o-mini"
	DefaultTemperature   = 0.1
	DefaultSummaryLength = 1000
)

// chatCompleter is the slice of the OpenAI client the judge needs.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options configures the judge client. Zero values take the package
// defaults.
type Options struct {
	BaseURL     string // override for OpenAI-compatible gateways
	Model       string
	Temperature float32
}

// Client is the judge service client.
type Client struct {
	llm         chatCompleter
	model       string
	temperature float32
	log         zerolog.Logger
}

// New builds a judge client from an API key.
func New(apiKey string, opts Options, log zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("judge api key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	c := &Client{
		llm:         openai.NewClientWithConfig(cfg),
		model:       opts.Model,
		temperature: opts.Temperature,
		log:         log,
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.temperature == 0 {
		c.temperature = DefaultTemperature
	}
	return c, nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Judge asks the model whether the item satisfies the rule. The URL is
// included for traceability in the model's context and in logs.
func (c *Client) Judge(ctx context.Context, rule, title, message string, files []string, diff, url string) (bool, error) {
	system := fmt.Sprintf(`You are a code review expert. %s

Analyse the commit or pull request below and decide strictly whether it satisfies the requirement.

You must answer with exactly "yes" or "no" and nothing else.`, rule)

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n\n", title)
	fmt.Fprintf(&b, "Message: %s\n\n", message)
	fmt.Fprintf(&b, "URL: %s\n\n", url)
	b.WriteString("Changed files:\n")
	b.WriteString(strings.Join(files, "\n"))
	b.WriteString("\n\nCode change summary:\n")
	b.WriteString(diff)

	content, err := c.complete(ctx, system, b.String())
	if err != nil {
		return false, err
	}

	verdict := parseVerdict(content)
	c.log.Info().Bool("accepted", verdict).Str("url", url).Str("title", title).Msg("judge verdict")
	return verdict, nil
}

// parseVerdict interprets the model's answer. Anything that does not
// affirm is a rejection.
func parseVerdict(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return strings.Contains(answer, "yes") || strings.Contains(answer, "是")
}

// Summarize compresses a diff to roughly maxLen characters. Diffs
// already within the bound are returned unchanged.
func (c *Client) Summarize(ctx context.Context, diff string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultSummaryLength
	}
	if len(diff) <= maxLen {
		return diff, nil
	}

	system := `You are a code review expert. Summarize the main content of the code change below, focusing on:
1. modified behaviour
2. new features
3. fixed problems
4. the key hunks

Keep the summary under 200 words.`

	truncated := diff[:maxLen] + "... (truncated)"

	out, err := c.complete(ctx, system, "Code change:\n"+truncated)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
