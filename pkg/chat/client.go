package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

// Completer issues exactly one chat completion request per call.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error)
}

// AzureClientConfig configures an AzureClient.
type AzureClientConfig struct {
	// Endpoint is the Azure OpenAI resource base URL.
	Endpoint string
	// APIKey authenticates via the api-key header.
	APIKey string
	// Deployment is the deployment name used as the model parameter.
	Deployment string
	// APIVersion is the api-version query value.
	APIVersion string
	// Timeout bounds one request; zero disables the bound.
	Timeout time.Duration
}

// AzureClient is a Completer backed by an Azure OpenAI deployment.
type AzureClient struct {
	client     openai.Client
	deployment string
	timeout    time.Duration
}

// NewAzureClient builds a client routed at the configured deployment.
func NewAzureClient(cfg AzureClientConfig) *AzureClient {
	return &AzureClient{
		client: openai.NewClient(
			azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		),
		deployment: cfg.Deployment,
		timeout:    cfg.Timeout,
	}
}

// Complete sends one chat completion request and returns the reply text.
func (c *AzureClient) Complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.deployment),
		Messages: messages,
	}
	var opts []option.RequestOption
	if c.timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(c.timeout))
	}
	completion, err := c.client.Chat.Completions.New(ctx, params, opts...)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return completion.Choices[0].Message.Content, nil
}
