package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Summarizer condenses a question before a moderation decision.
type Summarizer interface {
	// SummarizeQuestion creates a 1-3 sentence digest of a question in
	// the given language.
	SummarizeQuestion(ctx context.Context, title, description, language string) (string, error)
}

// OpenAIClient implements Summarizer using OpenAI Chat Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIClient{client: c, model: model}
}

func (o *OpenAIClient) SummarizeQuestion(ctx context.Context, title, description, language string) (string, error) {
	// set timeout to 60s for a single-question summary
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	// Trim inputs to keep tokens reasonable
	description = strings.TrimSpace(description)
	if description == "" {
		description = title
	}
	if len([]rune(description)) > 2000 {
		description = string([]rune(description)[:2000])
	}

	sys := fmt.Sprintf(`
		Summarize the community question below, write in %s, return 1-3 sentences.
		State what the asker wants and any notable context.
		Do not judge the question and do not attempt to answer it.
		`, langOrDefault(language))
	user := fmt.Sprintf("Title: %s\nQuestion: %s", title, description)
	out, err := o.create(ctx, sys, user)
	if err != nil {
		slog.Error("openai: summarize question error", "err", err)
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (o *OpenAIClient) create(ctx context.Context, system, user string) (string, error) {
	// Default timeout guard, if caller didn't set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 300*time.Second)
		defer cancel()
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func langOrDefault(lang string) string {
	l := strings.TrimSpace(lang)
	if l == "" {
		return "English"
	}
	return l
}
