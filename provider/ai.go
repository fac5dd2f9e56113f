package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	cli *openai.Client
}

func NewOpenAIClient(cli *openai.Client) *OpenAIClient {
	return &OpenAIClient{cli: cli}
}

// NewOpenAIFromKey builds a client for apiKey. baseURL is only set for
// self-hosted gateways and tests.
func NewOpenAIFromKey(apiKey string, baseURL string) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(1)}

	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return NewOpenAIClient(openai.NewClient(opts...))
}

// Check lists models to verify the key. It returns how many models are visible.
func (o *OpenAIClient) Check(ctx context.Context) (int, error) {
	page, err := o.cli.Models.List(ctx)

	if err != nil {
		return 0, fmt.Errorf("openai list models: %w", err)
	}

	return len(page.Data), nil
}
