// Package entities defines the domain types for the character lifecycle
// service. These are plain data types with no behavior beyond simple
// accessors; all state transitions live in the engine and orchestrator.
package entities

import "strings"

// Archetype is the fixed character class chosen at creation. It determines
// the attribute ceilings used when rolling and never changes afterwards.
type Archetype string

// Supported archetypes
const (
	ArchetypeWarrior Archetype = "warrior"
	ArchetypeMage    Archetype = "mage"
	ArchetypeRogue   Archetype = "rogue"
	ArchetypeCleric  Archetype = "cleric"
	ArchetypeBard    Archetype = "bard"
)

// Archetypes lists every supported archetype in declaration order.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeWarrior,
		ArchetypeMage,
		ArchetypeRogue,
		ArchetypeCleric,
		ArchetypeBard,
	}
}

// ArchetypeNames returns the archetype values as strings, for validation
// messages and CLI help text.
func ArchetypeNames() []string {
	all := Archetypes()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = string(a)
	}
	return names
}

// ParseArchetype parses a case-insensitive archetype name.
func ParseArchetype(s string) (Archetype, bool) {
	a := Archetype(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ArchetypeWarrior, ArchetypeMage, ArchetypeRogue, ArchetypeCleric, ArchetypeBard:
		return a, true
	}
	return "", false
}

// String returns the archetype name
func (a Archetype) String() string {
	return string(a)
}

// AttributeSet holds the six base attributes rolled at creation. Values are
// immutable once minted; evolution rolls a fresh set for the successor
// record instead of mutating this one.
type AttributeSet struct {
	Strength     uint32 `json:"strength"`
	Dexterity    uint32 `json:"dexterity"`
	Constitution uint32 `json:"constitution"`
	Intelligence uint32 `json:"intelligence"`
	Wisdom       uint32 `json:"wisdom"`
	Charisma     uint32 `json:"charisma"`
}

// AttributeNames lists the six attributes in canonical order. Consumers that
// index attributes positionally (the metadata attribute list, the on-chain
// attribute array) depend on this ordering.
var AttributeNames = [6]string{
	"strength",
	"dexterity",
	"constitution",
	"intelligence",
	"wisdom",
	"charisma",
}

// Array returns the attributes in canonical order, the shape the ledger's
// mint and evolve operations expect.
func (s AttributeSet) Array() [6]uint32 {
	return [6]uint32{
		s.Strength,
		s.Dexterity,
		s.Constitution,
		s.Intelligence,
		s.Wisdom,
		s.Charisma,
	}
}

// AttributeSetFromArray builds an AttributeSet from a canonical-order array,
// the inverse of Array.
func AttributeSetFromArray(arr [6]uint32) AttributeSet {
	return AttributeSet{
		Strength:     arr[0],
		Dexterity:    arr[1],
		Constitution: arr[2],
		Intelligence: arr[3],
		Wisdom:       arr[4],
		Charisma:     arr[5],
	}
}

// Sum returns the total of all six attributes.
func (s AttributeSet) Sum() uint64 {
	var total uint64
	for _, v := range s.Array() {
		total += uint64(v)
	}
	return total
}

// CharacterRecord is the on-chain character state as read back from the
// ledger. The ledger is the single writer of record; the engine and
// orchestrator only propose transitions over snapshots of this type.
//
// Archetype is deliberately absent: it lives in the published metadata, not
// in the persisted on-chain layout.
type CharacterRecord struct {
	// ID is the opaque token identifier, monotonically assigned, never reused.
	ID uint64 `json:"id"`

	// Owner is the holding address.
	Owner string `json:"owner"`

	// Attributes are the six base attributes rolled at creation.
	Attributes AttributeSet `json:"attributes"`

	// Experience is non-negative and monotonically non-decreasing.
	Experience uint64 `json:"experience"`

	// Level is derived from experience and monotonically non-decreasing.
	Level uint32 `json:"level"`

	// SeasonID is the season in which this record was minted.
	SeasonID uint32 `json:"season_id"`

	// Evolved flips one way, false to true. An evolved record is retired:
	// it can still be read but never evolves again.
	Evolved bool `json:"evolved"`

	// MetadataURI points at the published token metadata.
	MetadataURI string `json:"metadata_uri"`
}

// CreationArtifact is the off-chain output of a single creation attempt.
// Produced once, never mutated. If the saga fails after partial production
// the artifact is orphaned; a retry regenerates from scratch rather than
// reusing stale content references.
type CreationArtifact struct {
	Name        string `json:"name"`
	Backstory   string `json:"backstory"`
	Appearance  string `json:"appearance"`
	Personality string `json:"personality"`
	ImageURI    string `json:"image_uri"`
	MetadataURI string `json:"metadata_uri"`
}
