// Package generation provides the narrative and portrait generation client.
// Generation is a stateless collaborator: it may fail or time out, but it
// has no side effects to roll back, so the orchestrator simply surfaces
// failures and lets the caller retry the whole saga.
package generation

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_client.go -package=generationmock github.com/heroforge/heroforge-api/internal/clients/generation Client

const (
	defaultChatModel  = "gpt-4o-mini"
	defaultImageModel = "dall-e-3"
	defaultTimeout    = 120 * time.Second
)

// Client generates character narratives and portraits.
type Client interface {
	// GenerateNarrative produces a character's name, backstory, appearance,
	// and personality from the archetype and tone options.
	GenerateNarrative(ctx context.Context, input *NarrativeInput) (*NarrativeOutput, error)

	// GeneratePortrait produces portrait image bytes from an appearance
	// description.
	GeneratePortrait(ctx context.Context, input *PortraitInput) (*PortraitOutput, error)
}

// NarrativeInput defines the input for narrative generation
type NarrativeInput struct {
	Archetype entities.Archetype

	// Tone steers the writing style, e.g. "heroic", "grim". Empty uses the
	// model default.
	Tone string

	// Length hints the backstory length, e.g. "short", "medium".
	Length string
}

// NarrativeOutput defines the output for narrative generation
type NarrativeOutput struct {
	Name        string
	Backstory   string
	Appearance  string
	Personality string
}

// PortraitInput defines the input for portrait generation
type PortraitInput struct {
	// Description is the appearance text driving the image.
	Description string
}

// PortraitOutput defines the output for portrait generation
type PortraitOutput struct {
	// Image is the raw PNG bytes.
	Image []byte
}

// Config holds the configuration for the OpenAI-backed client.
type Config struct {
	APIKey string

	// BaseURL overrides the API endpoint, for proxies and tests.
	BaseURL string

	// ChatModel is the narrative model. Empty uses the default.
	ChatModel string

	// ImageModel is the portrait model. Empty uses the default.
	ImageModel string

	// Timeout bounds each generation call. Zero uses the default.
	Timeout time.Duration
}

// Validate ensures the required configuration is provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.APIKey == "" {
		vb.RequiredField("APIKey")
	}
	return vb.Build()
}

type openaiClient struct {
	client     *openai.Client
	chatModel  string
	imageModel string
	timeout    time.Duration
}

// New creates an OpenAI-backed generation client.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	c := &openaiClient{
		client:     openai.NewClientWithConfig(clientConfig),
		chatModel:  cfg.ChatModel,
		imageModel: cfg.ImageModel,
		timeout:    cfg.Timeout,
	}
	if c.chatModel == "" {
		c.chatModel = defaultChatModel
	}
	if c.imageModel == "" {
		c.imageModel = defaultImageModel
	}
	if c.timeout == 0 {
		c.timeout = defaultTimeout
	}
	return c, nil
}

// narrativePayload is the JSON document the narrative model is asked to
// produce.
type narrativePayload struct {
	Name        string `json:"name"`
	Backstory   string `json:"backstory"`
	Appearance  string `json:"appearance"`
	Personality string `json:"personality"`
}

// GenerateNarrative implements Client.
func (c *openaiClient) GenerateNarrative(ctx context.Context, input *NarrativeInput) (*NarrativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: narrativeSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: narrativeUserPrompt(input),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeGenerationFailed, "narrative generation failed")
	}

	if len(resp.Choices) == 0 {
		return nil, errors.GenerationFailed("narrative model returned no choices")
	}

	var payload narrativePayload
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeGenerationFailed,
			"narrative model returned malformed JSON")
	}

	if payload.Name == "" || payload.Backstory == "" || payload.Appearance == "" {
		return nil, errors.GenerationFailed("narrative model returned incomplete character")
	}

	return &NarrativeOutput{
		Name:        payload.Name,
		Backstory:   payload.Backstory,
		Appearance:  payload.Appearance,
		Personality: payload.Personality,
	}, nil
}

// GeneratePortrait implements Client.
func (c *openaiClient) GeneratePortrait(ctx context.Context, input *PortraitInput) (*PortraitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.InvalidArgument("description is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:          c.imageModel,
		Prompt:         portraitPrompt(input.Description),
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeGenerationFailed, "portrait generation failed")
	}

	if len(resp.Data) == 0 {
		return nil, errors.GenerationFailed("image model returned no data")
	}

	image, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeGenerationFailed,
			"image model returned malformed base64")
	}

	return &PortraitOutput{Image: image}, nil
}
