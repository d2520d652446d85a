package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
)

const defaultRPCTimeout = 30 * time.Second

// RPCConfig holds the configuration for the custodial signer client.
type RPCConfig struct {
	// Endpoint is the base URL of the custodial signing service.
	Endpoint string

	// APIKey authenticates against the signing service, sent as a bearer
	// token.
	APIKey string

	// Timeout bounds each invocation. Zero means the default.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Validate ensures the required configuration is provided.
func (c *RPCConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Endpoint == "" {
		vb.RequiredField("Endpoint")
	}
	return vb.Build()
}

// RPC implements Client against the custodial signing service. Each typed
// operation maps to a named contract method with named arguments; the
// service signs and submits the transaction and returns the receipt. The
// signer serializes its own transaction nonces, so writes queue here.
type RPC struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

var _ Client = (*RPC)(nil)

// NewRPC creates a custodial signer client.
func NewRPC(cfg *RPCConfig) (*RPC, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultRPCTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &RPC{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// Wire types for the signing service protocol.

type invokeRequest struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

type invokeResponse struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type wireRecord struct {
	ID          uint64    `json:"id"`
	Owner       string    `json:"owner"`
	Attributes  [6]uint32 `json:"attributes"`
	Experience  uint64    `json:"experience"`
	Level       uint32    `json:"level"`
	SeasonID    uint32    `json:"seasonId"`
	Evolved     bool      `json:"evolved"`
	MetadataURI string    `json:"metadataUri"`
}

// invoke posts a contract method call and decodes the result into out.
func (c *RPC) invoke(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(invokeRequest{Method: method, Params: params})
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s request", method)
	}

	url := c.endpoint + "/v1/invoke"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeLedgerFailed, "%s invocation failed", method)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeLedgerFailed, "failed to read %s response", method)
	}

	var decoded invokeResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return errors.WrapWithCodef(err, errors.CodeLedgerFailed,
			"failed to decode %s response (status %d)", method, resp.StatusCode)
	}

	if decoded.Error != nil {
		if decoded.Error.Code == string(errors.CodeNotFound) {
			return errors.NotFound(decoded.Error.Message)
		}
		return errors.LedgerFailedf("%s rejected: %s (%s)", method, decoded.Error.Message, decoded.Error.Code)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.LedgerFailedf("%s failed with status %d", method, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(decoded.Result, out); err != nil {
			return errors.WrapWithCodef(err, errors.CodeLedgerFailed, "failed to decode %s result", method)
		}
	}

	return nil
}

// Mint implements Client.
func (c *RPC) Mint(ctx context.Context, input *MintInput) (*MintOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	params := struct {
		Owner       string    `json:"owner"`
		Attributes  [6]uint32 `json:"attributes"`
		MetadataURI string    `json:"metadataUri"`
	}{
		Owner:       input.Owner,
		Attributes:  input.Attributes.Array(),
		MetadataURI: input.MetadataURI,
	}

	var result struct {
		TokenID uint64 `json:"tokenId"`
		TxRef   string `json:"txRef"`
	}
	if err := c.invoke(ctx, "mint", params, &result); err != nil {
		return nil, err
	}

	return &MintOutput{TokenID: result.TokenID, TxRef: result.TxRef}, nil
}

// Transfer implements Client.
func (c *RPC) Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	params := struct {
		TokenID uint64 `json:"tokenId"`
		To      string `json:"to"`
	}{TokenID: input.TokenID, To: input.To}

	var result struct {
		TxRef string `json:"txRef"`
	}
	if err := c.invoke(ctx, "transfer", params, &result); err != nil {
		return nil, err
	}

	return &TransferOutput{TxRef: result.TxRef}, nil
}

// GrantExperience implements Client.
func (c *RPC) GrantExperience(ctx context.Context, input *GrantExperienceInput) (*GrantExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	params := struct {
		TokenID uint64 `json:"tokenId"`
		Amount  uint64 `json:"amount"`
	}{TokenID: input.TokenID, Amount: input.Amount}

	var result struct {
		TxRef    string `json:"txRef"`
		NewLevel uint32 `json:"newLevel"`
	}
	if err := c.invoke(ctx, "grantExperience", params, &result); err != nil {
		return nil, err
	}

	return &GrantExperienceOutput{TxRef: result.TxRef, NewLevel: result.NewLevel}, nil
}

// Evolve implements Client.
func (c *RPC) Evolve(ctx context.Context, input *EvolveInput) (*EvolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	params := struct {
		TokenID     uint64    `json:"tokenId"`
		Attributes  [6]uint32 `json:"attributes"`
		MetadataURI string    `json:"metadataUri"`
	}{
		TokenID:     input.TokenID,
		Attributes:  input.Attributes.Array(),
		MetadataURI: input.MetadataURI,
	}

	var result struct {
		NewTokenID uint64 `json:"newTokenId"`
		TxRef      string `json:"txRef"`
	}
	if err := c.invoke(ctx, "evolve", params, &result); err != nil {
		return nil, err
	}

	return &EvolveOutput{NewTokenID: result.NewTokenID, TxRef: result.TxRef}, nil
}

// AdvanceSeason implements Client.
func (c *RPC) AdvanceSeason(ctx context.Context) (*AdvanceSeasonOutput, error) {
	var result struct {
		SeasonID uint32 `json:"seasonId"`
		TxRef    string `json:"txRef"`
	}
	if err := c.invoke(ctx, "advanceSeason", nil, &result); err != nil {
		return nil, err
	}

	return &AdvanceSeasonOutput{SeasonID: result.SeasonID, TxRef: result.TxRef}, nil
}

// ReadOwner implements Client.
func (c *RPC) ReadOwner(ctx context.Context, input *ReadOwnerInput) (*ReadOwnerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	params := struct {
		TokenID uint64 `json:"tokenId"`
	}{TokenID: input.TokenID}

	var result struct {
		Owner string `json:"owner"`
	}
	if err := c.invoke(ctx, "readOwner", params, &result); err != nil {
		return nil, err
	}

	return &ReadOwnerOutput{Owner: result.Owner}, nil
}

// ReadRecord implements Client.
func (c *RPC) ReadRecord(ctx context.Context, input *ReadRecordInput) (*ReadRecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	params := struct {
		TokenID uint64 `json:"tokenId"`
	}{TokenID: input.TokenID}

	var result wireRecord
	if err := c.invoke(ctx, "readRecord", params, &result); err != nil {
		return nil, err
	}

	return &ReadRecordOutput{
		Record: &entities.CharacterRecord{
			ID:          result.ID,
			Owner:       result.Owner,
			Attributes:  entities.AttributeSetFromArray(result.Attributes),
			Experience:  result.Experience,
			Level:       result.Level,
			SeasonID:    result.SeasonID,
			Evolved:     result.Evolved,
			MetadataURI: result.MetadataURI,
		},
	}, nil
}

// ReadTotalSupply implements Client.
func (c *RPC) ReadTotalSupply(ctx context.Context) (*ReadTotalSupplyOutput, error) {
	var result struct {
		TotalSupply uint64 `json:"totalSupply"`
	}
	if err := c.invoke(ctx, "readTotalSupply", nil, &result); err != nil {
		return nil, err
	}

	return &ReadTotalSupplyOutput{TotalSupply: result.TotalSupply}, nil
}

// ReadCurrentSeason implements Client.
func (c *RPC) ReadCurrentSeason(ctx context.Context) (*ReadCurrentSeasonOutput, error) {
	var result struct {
		SeasonID uint32 `json:"seasonId"`
	}
	if err := c.invoke(ctx, "readCurrentSeason", nil, &result); err != nil {
		return nil, err
	}

	return &ReadCurrentSeasonOutput{SeasonID: result.SeasonID}, nil
}
