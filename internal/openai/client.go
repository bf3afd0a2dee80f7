// Package openai turns reminder text into short notification lines.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// maxFallback is the longest text returned without a model.
const maxFallback = 80

// Client wraps the OpenAI SDK. The zero value, or a client built without an
// API key, summarises by truncation.
type Client struct {
	client *openai.Client
	model  openai.ChatModel
}

// New returns a client that calls the API when apiKey is provided.
func New(apiKey string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

// SummarizeReminder condenses a reminder's title and description into one
// short sentence for a notification.
func (c *Client) SummarizeReminder(ctx context.Context, title, description string) (string, error) {
	content := strings.TrimSpace(title)
	if d := strings.TrimSpace(description); d != "" {
		content += ": " + d
	}
	if content == "" {
		return "", fmt.Errorf("content cannot be empty")
	}
	if c == nil || c.client == nil {
		return Truncate(content), nil
	}

	req := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String("You turn study reminders into one short, encouraging sentence."),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(fmt.Sprintf("Summarise this study reminder in one sentence: %s", content)),
					},
				},
			},
		},
		Temperature:         openai.Float(0.3),
		MaxCompletionTokens: openai.Int(60),
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion received")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Truncate shortens s to at most 80 runes, marking the cut with "...".
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxFallback {
		return s
	}
	return string(r[:maxFallback]) + "..."
}
