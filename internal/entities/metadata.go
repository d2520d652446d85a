package entities

import "fmt"

// MetadataAttribute is one entry in a token's published attribute list.
type MetadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// TokenMetadata is the off-chain metadata document published to content
// storage and referenced by the on-chain record's metadata URI.
type TokenMetadata struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Attributes  []MetadataAttribute `json:"attributes"`
}

// NewTokenMetadata assembles the metadata document for a character. The
// attribute list ordering is stable and load-bearing: archetype, level, the
// six attributes in canonical order, then personality. Consumers that index
// attributes positionally depend on it.
func NewTokenMetadata(
	archetype Archetype,
	level uint32,
	attrs AttributeSet,
	name, backstory, personality, imageURI string,
) *TokenMetadata {
	list := make([]MetadataAttribute, 0, 9)
	list = append(list,
		MetadataAttribute{TraitType: "archetype", Value: archetype.String()},
		MetadataAttribute{TraitType: "level", Value: level},
	)

	values := attrs.Array()
	for i, attrName := range AttributeNames {
		list = append(list, MetadataAttribute{TraitType: attrName, Value: values[i]})
	}

	list = append(list, MetadataAttribute{TraitType: "personality", Value: personality})

	return &TokenMetadata{
		Name:        name,
		Description: backstory,
		Image:       imageURI,
		Attributes:  list,
	}
}

// DisplayName returns a short human-readable identifier for logs and
// published artifact names.
func (m *TokenMetadata) DisplayName() string {
	if m.Name == "" {
		return "unnamed character"
	}
	return fmt.Sprintf("%s metadata", m.Name)
}
