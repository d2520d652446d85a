// Package character defines the interface for character lifecycle operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/heroforge/heroforge-api/internal/services/character Service

import (
	"context"

	"github.com/heroforge/heroforge-api/internal/entities"
)

// Service defines the interface for character lifecycle operations
type Service interface {
	// Creation saga
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// Progression
	GrantExperience(ctx context.Context, input *GrantExperienceInput) (*GrantExperienceOutput, error)
	EvolveCharacter(ctx context.Context, input *EvolveCharacterInput) (*EvolveCharacterOutput, error)
	GetPower(ctx context.Context, input *GetPowerInput) (*GetPowerOutput, error)

	// Ownership
	TransferCharacter(ctx context.Context, input *TransferCharacterInput) (*TransferCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// Season administration
	AdvanceSeason(ctx context.Context, input *AdvanceSeasonInput) (*AdvanceSeasonOutput, error)
	GetCurrentSeason(ctx context.Context, input *GetCurrentSeasonInput) (*GetCurrentSeasonOutput, error)
}

// Creation saga types

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	OwnerAddress string
	Archetype    entities.Archetype

	// Tone and Length steer narrative generation. Optional.
	Tone   string
	Length string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Record    *entities.CharacterRecord
	Archetype entities.Archetype
	Artifact  *entities.CreationArtifact
	TxRef     string
}

// Progression types

// GrantExperienceInput defines the request for granting experience
type GrantExperienceInput struct {
	TokenID uint64
	Amount  int64
}

// GrantExperienceOutput defines the response for granting experience.
// Granted is false when the record is evolved: retired records accrue no
// experience, the record is returned unchanged, and nothing is submitted to
// the ledger.
type GrantExperienceOutput struct {
	Record    *entities.CharacterRecord
	Granted   bool
	LeveledUp bool
	NewLevel  uint32
	TxRef     string
}

// EvolveCharacterInput defines the request for evolving a character.
// Archetype is required because it lives off-chain: the successor's artwork
// and metadata are generated for this archetype.
type EvolveCharacterInput struct {
	TokenID   uint64
	Archetype entities.Archetype

	Tone   string
	Length string
}

// EvolveCharacterOutput defines the response for evolving a character
type EvolveCharacterOutput struct {
	// Source is the retired record, evolved flag set.
	Source *entities.CharacterRecord

	// Successor is the fresh level-1 record minted in the current season.
	Successor *entities.CharacterRecord

	Artifact *entities.CreationArtifact
	TxRef    string
}

// GetPowerInput defines the request for computing effective power
type GetPowerInput struct {
	TokenID uint64

	// SeasonalBonus is the externally supplied per-record, per-season value.
	// Zero when the caller has none.
	SeasonalBonus uint64
}

// GetPowerOutput defines the response for computing effective power
type GetPowerOutput struct {
	Power  uint64
	Record *entities.CharacterRecord
}

// Ownership types

// TransferCharacterInput defines the request for transferring a character
type TransferCharacterInput struct {
	TokenID uint64
	To      string
}

// TransferCharacterOutput defines the response for transferring a character
type TransferCharacterOutput struct {
	Record *entities.CharacterRecord
	TxRef  string
}

// GetCharacterInput defines the request for reading a character
type GetCharacterInput struct {
	TokenID uint64
}

// GetCharacterOutput defines the response for reading a character
type GetCharacterOutput struct {
	Record *entities.CharacterRecord
}

// ListCharactersInput defines the request for listing characters by owner
type ListCharactersInput struct {
	Owner    string
	Page     int
	PageSize int
}

// ListCharactersOutput defines the response for listing characters by owner
type ListCharactersOutput struct {
	Records       []*entities.CharacterRecord
	TotalMatching int
	Page          int
	PageSize      int
}

// Season types

// AdvanceSeasonInput defines the request for advancing the season
type AdvanceSeasonInput struct{}

// AdvanceSeasonOutput defines the response for advancing the season
type AdvanceSeasonOutput struct {
	SeasonID uint32
	TxRef    string
}

// GetCurrentSeasonInput defines the request for reading the current season
type GetCurrentSeasonInput struct{}

// GetCurrentSeasonOutput defines the response for reading the current season
type GetCurrentSeasonOutput struct {
	SeasonID uint32
}
