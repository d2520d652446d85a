package rules

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
)

// RollFunc returns a uniform integer in [1, sides] inclusive. The default
// implementation is backed by rpg-toolkit dice; tests inject a seeded source
// to make rolls deterministic.
type RollFunc func(sides int) (int, error)

func toolkitRoll(sides int) (int, error) {
	roll, err := dice.NewRoll(1, sides)
	if err != nil {
		return 0, err
	}
	return roll.GetValue(), nil
}

// StatRoller rolls base attribute sets for new characters. For each of the
// six attributes it draws uniformly from [AttributeFloor, ceiling]
// inclusive, where the ceiling comes from the archetype's table.
type StatRoller struct {
	roll RollFunc
}

// NewStatRoller creates a stat roller backed by rpg-toolkit dice.
func NewStatRoller() *StatRoller {
	return &StatRoller{roll: toolkitRoll}
}

// NewStatRollerWithSource creates a stat roller with a custom random source.
func NewStatRollerWithSource(roll RollFunc) *StatRoller {
	return &StatRoller{roll: roll}
}

// Roll produces a fresh attribute set for the archetype.
func (r *StatRoller) Roll(archetype entities.Archetype) (entities.AttributeSet, error) {
	table, ok := Ceilings(archetype)
	if !ok {
		return entities.AttributeSet{}, errors.InvalidArgumentf("unknown archetype: %s", archetype)
	}
	return r.RollWithCeilings(table)
}

// RollWithCeilings rolls against an explicit ceiling table. A ceiling below
// the floor is clamped up to the floor so the range never inverts.
func (r *StatRoller) RollWithCeilings(table CeilingTable) (entities.AttributeSet, error) {
	var values [6]uint32
	for i, ceiling := range table {
		if ceiling < AttributeFloor {
			ceiling = AttributeFloor
		}

		span := int(ceiling) - AttributeFloor + 1
		v, err := r.roll(span)
		if err != nil {
			return entities.AttributeSet{}, errors.Wrapf(err, "failed to roll attribute %s", entities.AttributeNames[i])
		}

		values[i] = uint32(AttributeFloor + v - 1) // #nosec G115
	}

	return entities.AttributeSetFromArray(values), nil
}
