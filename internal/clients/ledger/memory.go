package ledger

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
)

// MemoryConfig holds the contract parameters for the in-memory ledger.
type MemoryConfig struct {
	// XPPerLevel is the experience required per level. Zero means the
	// reference default of 1000.
	XPPerLevel uint64

	// EvolutionLevel is the minimum level for evolution. Zero means the
	// reference default of 5.
	EvolutionLevel uint32
}

// Memory implements Client as an in-process chain: the per-token record
// layout, the global next-id counter, and the global season counter, with
// the contract's own grant and evolve rules enforced on the write path.
// Used by tests and the CLI's dev mode. A single mutex serializes all
// transactions, mirroring the per-signer nonce ordering of a real chain.
type Memory struct {
	mu         sync.Mutex
	records    map[uint64]*entities.CharacterRecord
	nextID     uint64
	season     uint32
	txCounter  uint64
	xpPerLevel uint64
	evolveAt   uint32
}

var _ Client = (*Memory)(nil)

// NewMemory creates an empty in-memory ledger at season 1.
func NewMemory(cfg *MemoryConfig) *Memory {
	m := &Memory{
		records:    make(map[uint64]*entities.CharacterRecord),
		nextID:     1,
		season:     1,
		xpPerLevel: 1000,
		evolveAt:   5,
	}
	if cfg != nil {
		if cfg.XPPerLevel > 0 {
			m.xpPerLevel = cfg.XPPerLevel
		}
		if cfg.EvolutionLevel > 0 {
			m.evolveAt = cfg.EvolutionLevel
		}
	}
	return m
}

// nextTxRef must be called with the mutex held.
func (m *Memory) nextTxRef() string {
	m.txCounter++
	return fmt.Sprintf("0x%064x", m.txCounter)
}

// Mint implements Client.
func (m *Memory) Mint(_ context.Context, input *MintInput) (*MintOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Owner == "" {
		return nil, errors.LedgerFailed("mint reverted: owner address is empty")
	}
	if input.MetadataURI == "" {
		return nil, errors.LedgerFailed("mint reverted: metadata URI is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	m.records[id] = &entities.CharacterRecord{
		ID:          id,
		Owner:       input.Owner,
		Attributes:  input.Attributes,
		Experience:  0,
		Level:       1,
		SeasonID:    m.season,
		Evolved:     false,
		MetadataURI: input.MetadataURI,
	}

	return &MintOutput{TokenID: id, TxRef: m.nextTxRef()}, nil
}

// Transfer implements Client.
func (m *Memory) Transfer(_ context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.To == "" {
		return nil, errors.LedgerFailed("transfer reverted: recipient address is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[input.TokenID]
	if !ok {
		return nil, errors.NotFoundf("token %d does not exist", input.TokenID)
	}

	record.Owner = input.To
	return &TransferOutput{TxRef: m.nextTxRef()}, nil
}

// GrantExperience implements Client. The contract recomputes the level from
// total experience; levels never decrease.
func (m *Memory) GrantExperience(_ context.Context, input *GrantExperienceInput) (*GrantExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[input.TokenID]
	if !ok {
		return nil, errors.NotFoundf("token %d does not exist", input.TokenID)
	}

	if input.Amount > math.MaxUint64-record.Experience {
		return nil, errors.LedgerFailedf("grantExperience reverted: overflow on token %d", input.TokenID)
	}

	record.Experience += input.Amount
	level := record.Experience/m.xpPerLevel + 1
	if level > uint64(record.Level) {
		record.Level = uint32(level) // #nosec G115
	}

	return &GrantExperienceOutput{TxRef: m.nextTxRef(), NewLevel: record.Level}, nil
}

// Evolve implements Client. The contract enforces the evolution rules on
// its side as well: the source must be at the evolution level and not yet
// evolved. The source is flagged evolved and kept; the successor is a brand
// new record at level 1 in the current season.
func (m *Memory) Evolve(_ context.Context, input *EvolveInput) (*EvolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MetadataURI == "" {
		return nil, errors.LedgerFailed("evolve reverted: metadata URI is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	source, ok := m.records[input.TokenID]
	if !ok {
		return nil, errors.NotFoundf("token %d does not exist", input.TokenID)
	}
	if source.Evolved {
		return nil, errors.LedgerFailedf("evolve reverted: token %d already evolved", input.TokenID)
	}
	if source.Level < m.evolveAt {
		return nil, errors.LedgerFailedf(
			"evolve reverted: token %d is level %d, requires %d",
			input.TokenID, source.Level, m.evolveAt)
	}

	source.Evolved = true

	id := m.nextID
	m.nextID++

	m.records[id] = &entities.CharacterRecord{
		ID:          id,
		Owner:       source.Owner,
		Attributes:  input.Attributes,
		Experience:  0,
		Level:       1,
		SeasonID:    m.season,
		Evolved:     false,
		MetadataURI: input.MetadataURI,
	}

	return &EvolveOutput{NewTokenID: id, TxRef: m.nextTxRef()}, nil
}

// AdvanceSeason implements Client.
func (m *Memory) AdvanceSeason(_ context.Context) (*AdvanceSeasonOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.season++
	return &AdvanceSeasonOutput{SeasonID: m.season, TxRef: m.nextTxRef()}, nil
}

// ReadOwner implements Client.
func (m *Memory) ReadOwner(_ context.Context, input *ReadOwnerInput) (*ReadOwnerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[input.TokenID]
	if !ok {
		return nil, errors.NotFoundf("token %d does not exist", input.TokenID)
	}
	return &ReadOwnerOutput{Owner: record.Owner}, nil
}

// ReadRecord implements Client. Returns a copy; the caller cannot mutate
// ledger state through it.
func (m *Memory) ReadRecord(_ context.Context, input *ReadRecordInput) (*ReadRecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[input.TokenID]
	if !ok {
		return nil, errors.NotFoundf("token %d does not exist", input.TokenID)
	}

	copied := *record
	return &ReadRecordOutput{Record: &copied}, nil
}

// ReadTotalSupply implements Client.
func (m *Memory) ReadTotalSupply(_ context.Context) (*ReadTotalSupplyOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &ReadTotalSupplyOutput{TotalSupply: m.nextID - 1}, nil
}

// ReadCurrentSeason implements Client.
func (m *Memory) ReadCurrentSeason(_ context.Context) (*ReadCurrentSeasonOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &ReadCurrentSeasonOutput{SeasonID: m.season}, nil
}
