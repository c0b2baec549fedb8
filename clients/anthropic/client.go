package anthropic

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"profilecoach/clients"
)

// AnthropicClient implements clients.LLMClient on the Anthropic Messages API
type AnthropicClient struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicClient creates a new LLM gateway client for the given model
func NewAnthropicClient(apiKey, model string, maxTokens int64) *AnthropicClient {
	return &AnthropicClient{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

// Complete sends the system prompt plus conversation to the model and returns
// its text reply. The SDK handles transport retries; any remaining failure is
// returned as an error for the caller to convert into degraded text.
func (c *AnthropicClient) Complete(
	ctx context.Context,
	systemPrompt string,
	messages []clients.ChatMessage,
) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	for _, msg := range messages {
		switch msg.Role {
		case clients.MessageRoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	log.Printf("🤖 Calling model %s with %d conversation messages", c.model, len(messages))

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call messages API: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("model returned no text content")
	}

	log.Printf("🤖 Model replied with %d characters (stop reason: %s)", len(text), resp.StopReason)
	return text, nil
}
