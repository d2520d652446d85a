// Package content provides the content-addressed storage publisher.
// Publishing is cheap and idempotent-safe: pinning the same bytes twice
// yields the same identifier, and orphaned pins from failed sagas are left
// in place rather than compensated.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/heroforge/heroforge-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_publisher.go -package=contentmock github.com/heroforge/heroforge-api/internal/clients/content Publisher

const (
	defaultPinTimeout = 60 * time.Second

	// URIScheme is the content-addressing scheme of returned URIs.
	URIScheme = "ipfs://"
)

// Publisher publishes bytes or JSON documents to content-addressed storage
// and returns a permanent, resolvable URI.
type Publisher interface {
	// PublishBytes pins raw bytes under a display name.
	PublishBytes(ctx context.Context, input *PublishBytesInput) (*PublishOutput, error)

	// PublishJSON marshals and pins a JSON document under a display name.
	PublishJSON(ctx context.Context, input *PublishJSONInput) (*PublishOutput, error)
}

// PublishBytesInput defines the input for publishing raw bytes
type PublishBytesInput struct {
	Data        []byte
	DisplayName string
	ContentType string
}

// PublishJSONInput defines the input for publishing a JSON document
type PublishJSONInput struct {
	Value       any
	DisplayName string
}

// PublishOutput defines the output of a publish
type PublishOutput struct {
	// URI is the permanent content identifier, e.g. "ipfs://Qm...".
	URI string
}

// PinningConfig holds the configuration for the pinning service client.
type PinningConfig struct {
	// Endpoint is the base URL of the pinning service.
	Endpoint string

	// Token authenticates against the pinning service.
	Token string

	// Timeout bounds each pin. Zero means the default.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Validate ensures the required configuration is provided.
func (c *PinningConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Endpoint == "" {
		vb.RequiredField("Endpoint")
	}
	return vb.Build()
}

// pinningPublisher implements Publisher against an IPFS pinning service.
type pinningPublisher struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewPinning creates a pinning-service publisher.
func NewPinning(cfg *PinningConfig) (Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultPinTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &pinningPublisher{
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

// PublishBytes implements Publisher.
func (p *pinningPublisher) PublishBytes(ctx context.Context, input *PublishBytesInput) (*PublishOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("data is required")
	}

	return p.pin(ctx, input.Data, input.DisplayName)
}

// PublishJSON implements Publisher.
func (p *pinningPublisher) PublishJSON(ctx context.Context, input *PublishJSONInput) (*PublishOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	data, err := json.Marshal(input.Value)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "failed to encode JSON document")
	}

	return p.pin(ctx, data, input.DisplayName)
}

func (p *pinningPublisher) pin(ctx context.Context, data []byte, displayName string) (*PublishOutput, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", displayName)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "failed to build pin request")
	}
	if _, err := part.Write(data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "failed to build pin request")
	}
	if displayName != "" {
		if err := writer.WriteField("name", displayName); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "failed to build pin request")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "failed to build pin request")
	}

	url := p.endpoint + "/pins"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "failed to build pin request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "pin request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "failed to read pin response")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.PublishFailedf("pin rejected with status %d: %s", resp.StatusCode, respBody)
	}

	var decoded struct {
		CID string `json:"cid"`
	}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePublishFailed, "failed to decode pin response")
	}
	if decoded.CID == "" {
		return nil, errors.PublishFailed("pin response missing content identifier")
	}

	return &PublishOutput{URI: URIScheme + decoded.CID}, nil
}
