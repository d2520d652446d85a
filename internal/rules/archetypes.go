// Package rules holds the game rules for character generation and
// progression bounds: archetype attribute ceilings and the stat roller.
package rules

import (
	"github.com/heroforge/heroforge-api/internal/entities"
)

// AttributeFloor is the global minimum for every rolled attribute,
// regardless of archetype.
const AttributeFloor = 10

// CeilingTable holds the per-attribute maximum roll for one archetype, in
// canonical attribute order (strength, dexterity, constitution,
// intelligence, wisdom, charisma).
type CeilingTable [6]uint32

// archetypeCeilings is the fixed per-archetype per-attribute ceiling table.
// Each archetype peaks at 18 in its signature attribute.
var archetypeCeilings = map[entities.Archetype]CeilingTable{
	entities.ArchetypeWarrior: {18, 14, 16, 12, 12, 12},
	entities.ArchetypeMage:    {12, 14, 12, 18, 16, 12},
	entities.ArchetypeRogue:   {12, 18, 12, 14, 12, 16},
	entities.ArchetypeCleric:  {14, 12, 14, 12, 18, 16},
	entities.ArchetypeBard:    {12, 14, 12, 14, 12, 18},
}

// Ceilings returns the ceiling table for an archetype.
func Ceilings(archetype entities.Archetype) (CeilingTable, bool) {
	table, ok := archetypeCeilings[archetype]
	return table, ok
}
