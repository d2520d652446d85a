// Package ledger provides the client for the on-chain character contract,
// reached through a custodial signing service. The operation set is closed
// and typed: one method per contract operation instead of a string-keyed
// dispatch, so an unsupported operation is a compile error rather than a
// runtime failure.
//
// The ledger is the single writer of record. All transactions from the
// custodial signer are serialized by the chain's nonce ordering, so
// concurrent callers queue at this boundary.
package ledger

import (
	"context"

	"github.com/heroforge/heroforge-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_client.go -package=ledgermock github.com/heroforge/heroforge-api/internal/clients/ledger Client

// Client is the typed interface to the character contract.
type Client interface {
	// Mint creates a new character record. The point of record creation:
	// nothing exists on-chain before this succeeds.
	Mint(ctx context.Context, input *MintInput) (*MintOutput, error)

	// Transfer moves a token to a new owner.
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// GrantExperience adds experience to a record; the contract recomputes
	// the level.
	GrantExperience(ctx context.Context, input *GrantExperienceInput) (*GrantExperienceOutput, error)

	// Evolve retires a record (evolved=true) and mints its successor at
	// level 1 in the current season.
	Evolve(ctx context.Context, input *EvolveInput) (*EvolveOutput, error)

	// AdvanceSeason increments the global season counter. Admin only.
	AdvanceSeason(ctx context.Context) (*AdvanceSeasonOutput, error)

	// ReadOwner returns the owner address of a token.
	ReadOwner(ctx context.Context, input *ReadOwnerInput) (*ReadOwnerOutput, error)

	// ReadRecord returns the full on-chain record for a token.
	ReadRecord(ctx context.Context, input *ReadRecordInput) (*ReadRecordOutput, error)

	// ReadTotalSupply returns the number of tokens minted so far.
	ReadTotalSupply(ctx context.Context) (*ReadTotalSupplyOutput, error)

	// ReadCurrentSeason returns the current season counter.
	ReadCurrentSeason(ctx context.Context) (*ReadCurrentSeasonOutput, error)
}

// MintInput defines the input for minting a character
type MintInput struct {
	Owner       string
	Attributes  entities.AttributeSet
	MetadataURI string
}

// MintOutput defines the output for minting a character
type MintOutput struct {
	TokenID uint64
	TxRef   string
}

// TransferInput defines the input for transferring a token
type TransferInput struct {
	TokenID uint64
	To      string
}

// TransferOutput defines the output for transferring a token
type TransferOutput struct {
	TxRef string
}

// GrantExperienceInput defines the input for granting experience
type GrantExperienceInput struct {
	TokenID uint64
	Amount  uint64
}

// GrantExperienceOutput defines the output for granting experience
type GrantExperienceOutput struct {
	TxRef    string
	NewLevel uint32
}

// EvolveInput defines the input for evolving a record
type EvolveInput struct {
	TokenID     uint64
	Attributes  entities.AttributeSet
	MetadataURI string
}

// EvolveOutput defines the output for evolving a record
type EvolveOutput struct {
	NewTokenID uint64
	TxRef      string
}

// AdvanceSeasonOutput defines the output for advancing the season
type AdvanceSeasonOutput struct {
	SeasonID uint32
	TxRef    string
}

// ReadOwnerInput defines the input for reading a token's owner
type ReadOwnerInput struct {
	TokenID uint64
}

// ReadOwnerOutput defines the output for reading a token's owner
type ReadOwnerOutput struct {
	Owner string
}

// ReadRecordInput defines the input for reading a record
type ReadRecordInput struct {
	TokenID uint64
}

// ReadRecordOutput defines the output for reading a record
type ReadRecordOutput struct {
	Record *entities.CharacterRecord
}

// ReadTotalSupplyOutput defines the output for reading total supply
type ReadTotalSupplyOutput struct {
	TotalSupply uint64
}

// ReadCurrentSeasonOutput defines the output for reading the season
type ReadCurrentSeasonOutput struct {
	SeasonID uint32
}
