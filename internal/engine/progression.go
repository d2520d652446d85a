// Package engine implements the character progression engine: experience
// accrual, level derivation, evolution eligibility, and effective power.
//
// The engine is pure. It never reads or writes the ledger; it computes
// transitions over CharacterRecord snapshots and the caller persists the
// result through the ledger client. Because it is pure and cheap it is used
// concretely rather than behind an interface.
package engine

import (
	"math"

	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
)

// Reference configuration defaults.
const (
	// DefaultXPPerLevel is the experience required per level.
	DefaultXPPerLevel uint64 = 1000

	// DefaultEvolutionLevel is the minimum level for evolution eligibility.
	DefaultEvolutionLevel uint32 = 5
)

// Config holds the progression tunables.
type Config struct {
	// XPPerLevel is the experience required per level. Zero means default.
	XPPerLevel uint64

	// EvolutionLevel is the minimum level for evolution. Zero means default.
	EvolutionLevel uint32
}

// Engine computes progression state transitions.
type Engine struct {
	xpPerLevel     uint64
	evolutionLevel uint32
}

// New creates a progression engine. A nil config uses the reference
// defaults.
func New(cfg *Config) *Engine {
	e := &Engine{
		xpPerLevel:     DefaultXPPerLevel,
		evolutionLevel: DefaultEvolutionLevel,
	}
	if cfg != nil {
		if cfg.XPPerLevel > 0 {
			e.xpPerLevel = cfg.XPPerLevel
		}
		if cfg.EvolutionLevel > 0 {
			e.evolutionLevel = cfg.EvolutionLevel
		}
	}
	return e
}

// XPPerLevel returns the configured experience per level.
func (e *Engine) XPPerLevel() uint64 {
	return e.xpPerLevel
}

// EvolutionLevel returns the configured evolution threshold.
func (e *Engine) EvolutionLevel() uint32 {
	return e.evolutionLevel
}

// ApplyExperienceResult is the outcome of applying an experience gain to a
// record snapshot.
type ApplyExperienceResult struct {
	// Record is the post-transition snapshot. The input record is not
	// mutated.
	Record entities.CharacterRecord

	// LeveledUp reports whether the gain crossed at least one level
	// boundary.
	LeveledUp bool

	// NewLevel is the derived level after the gain.
	NewLevel uint32
}

// ApplyExperience applies a non-negative experience gain to a record
// snapshot. Zero is a legal no-op. A gain that would overflow the
// experience domain is an out-of-range error, never silent wraparound.
func (e *Engine) ApplyExperience(record entities.CharacterRecord, amount int64) (*ApplyExperienceResult, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("amount", amount, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	gain := uint64(amount)
	if gain > math.MaxUint64-record.Experience {
		return nil, errors.OutOfRangef(
			"experience gain %d overflows record %d at %d experience",
			amount, record.ID, record.Experience)
	}

	newExperience := record.Experience + gain
	newLevel := e.LevelForExperience(newExperience)
	if newLevel < record.Level {
		// Levels never regress, even over an inconsistent snapshot.
		newLevel = record.Level
	}

	updated := record
	updated.Experience = newExperience
	updated.Level = newLevel

	return &ApplyExperienceResult{
		Record:    updated,
		LeveledUp: newLevel > record.Level,
		NewLevel:  newLevel,
	}, nil
}

// LevelForExperience derives the level for a total experience value:
// floor(experience / XPPerLevel) + 1.
func (e *Engine) LevelForExperience(experience uint64) uint32 {
	level := experience/e.xpPerLevel + 1
	if level > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(level)
}

// CanEvolve reports evolution eligibility: at or above the evolution level
// and not already evolved.
func (e *Engine) CanEvolve(record entities.CharacterRecord) bool {
	return record.Level >= e.evolutionLevel && !record.Evolved
}

// ValidateEvolution returns a validation error describing why a record
// cannot evolve, or nil if it is eligible.
func (e *Engine) ValidateEvolution(record entities.CharacterRecord) error {
	if record.Evolved {
		return errors.InvalidArgumentf("record %d has already evolved and is retired", record.ID)
	}
	if record.Level < e.evolutionLevel {
		return errors.InvalidArgumentf(
			"record %d is level %d, evolution requires level %d",
			record.ID, record.Level, e.evolutionLevel)
	}
	return nil
}

// Power computes effective power from current state:
//
//	(sum of attributes) * level * (evolved ? 2 : 1) + seasonalBonus
//
// The seasonal bonus is an externally supplied per-record, per-season value
// defaulting to zero. Power is recomputed on every query, never cached.
func (e *Engine) Power(record entities.CharacterRecord, seasonalBonus uint64) uint64 {
	power := record.Attributes.Sum() * uint64(record.Level)
	if record.Evolved {
		power *= 2
	}
	return power + seasonalBonus
}
