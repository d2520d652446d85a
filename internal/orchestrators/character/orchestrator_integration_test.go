//go:build integration
// +build integration

package character_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/heroforge/heroforge-api/internal/clients/content"
	contentmock "github.com/heroforge/heroforge-api/internal/clients/content/mock"
	"github.com/heroforge/heroforge-api/internal/clients/generation"
	generationmock "github.com/heroforge/heroforge-api/internal/clients/generation/mock"
	"github.com/heroforge/heroforge-api/internal/clients/ledger"
	"github.com/heroforge/heroforge-api/internal/engine"
	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/orchestrators/character"
	"github.com/heroforge/heroforge-api/internal/registry"
	"github.com/heroforge/heroforge-api/internal/repositories/tokenindex"
	"github.com/heroforge/heroforge-api/internal/rules"
	charactersvc "github.com/heroforge/heroforge-api/internal/services/character"
)

// LifecycleTestSuite drives the whole lifecycle against the in-process
// ledger and a real redis-backed owner index, with only generation and
// publishing mocked out.
type LifecycleTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGenerator *generationmock.MockClient
	mockPublisher *contentmock.MockPublisher
	chain         *ledger.Memory
	miniRedis     *miniredis.Miniredis
	orchestrator  *character.Orchestrator
	ctx           context.Context

	pinCounter int
}

func (s *LifecycleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGenerator = generationmock.NewMockClient(s.ctrl)
	s.mockPublisher = contentmock.NewMockPublisher(s.ctrl)
	s.chain = ledger.NewMemory(nil)
	s.ctx = context.Background()
	s.pinCounter = 0

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	index, err := tokenindex.NewRedis(&tokenindex.RedisConfig{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	})
	s.Require().NoError(err)

	reg, err := registry.New(&registry.Config{Ledger: s.chain, Index: index})
	s.Require().NoError(err)

	orchestrator, err := character.New(&character.Config{
		StatRoller: rules.NewStatRoller(),
		Generator:  s.mockGenerator,
		Publisher:  s.mockPublisher,
		Ledger:     s.chain,
		Registry:   reg,
		Engine:     engine.New(nil),
		Index:      index,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *LifecycleTestSuite) TearDownTest() {
	s.miniRedis.Close()
	s.ctrl.Finish()
}

func (s *LifecycleTestSuite) expectGeneration() {
	s.mockGenerator.EXPECT().
		GenerateNarrative(gomock.Any(), gomock.Any()).
		Return(&generation.NarrativeOutput{
			Name:        "Kaelen Stormguard",
			Backstory:   "Raised by border wardens.",
			Appearance:  "Scarred, broad-shouldered, grey cloak.",
			Personality: "Stoic and loyal.",
		}, nil)
	s.mockGenerator.EXPECT().
		GeneratePortrait(gomock.Any(), gomock.Any()).
		Return(&generation.PortraitOutput{Image: []byte("png-bytes")}, nil)
	s.mockPublisher.EXPECT().
		PublishBytes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *content.PublishBytesInput) (*content.PublishOutput, error) {
			s.pinCounter++
			return &content.PublishOutput{URI: fmt.Sprintf("ipfs://QmPin%d", s.pinCounter)}, nil
		})
	s.mockPublisher.EXPECT().
		PublishJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *content.PublishJSONInput) (*content.PublishOutput, error) {
			s.pinCounter++
			return &content.PublishOutput{URI: fmt.Sprintf("ipfs://QmPin%d", s.pinCounter)}, nil
		})
}

func (s *LifecycleTestSuite) TestFullCharacterLifecycle() {
	// Create a warrior for 0xA.
	s.expectGeneration()
	created, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeWarrior,
	})
	s.Require().NoError(err)

	s.Equal(uint32(1), created.Record.Level)
	s.Equal(uint64(0), created.Record.Experience)
	s.False(created.Record.Evolved)
	s.NotEmpty(created.TxRef)
	s.NotEmpty(created.Artifact.ImageURI)
	s.NotEmpty(created.Artifact.MetadataURI)

	ceilings, ok := rules.Ceilings(entities.ArchetypeWarrior)
	s.Require().True(ok)
	for i, v := range created.Record.Attributes.Array() {
		s.GreaterOrEqual(v, uint32(rules.AttributeFloor))
		s.LessOrEqual(v, ceilings[i])
	}

	tokenID := created.Record.ID

	// Grant 2500 experience: floor(2500/1000)+1 = level 3.
	granted, err := s.orchestrator.GrantExperience(s.ctx, &charactersvc.GrantExperienceInput{
		TokenID: tokenID,
		Amount:  2500,
	})
	s.Require().NoError(err)
	s.True(granted.Granted)
	s.True(granted.LeveledUp)
	s.Equal(uint32(3), granted.NewLevel)

	// Push to level 5 and evolve.
	_, err = s.orchestrator.GrantExperience(s.ctx, &charactersvc.GrantExperienceInput{
		TokenID: tokenID,
		Amount:  2000,
	})
	s.Require().NoError(err)

	s.expectGeneration()
	evolved, err := s.orchestrator.EvolveCharacter(s.ctx, &charactersvc.EvolveCharacterInput{
		TokenID:   tokenID,
		Archetype: entities.ArchetypeWarrior,
	})
	s.Require().NoError(err)

	s.True(evolved.Source.Evolved)
	s.Equal(uint32(1), evolved.Successor.Level)
	s.Equal("0xA", evolved.Successor.Owner)

	// Granting to the retired source is a no-op.
	noop, err := s.orchestrator.GrantExperience(s.ctx, &charactersvc.GrantExperienceInput{
		TokenID: tokenID,
		Amount:  500,
	})
	s.Require().NoError(err)
	s.False(noop.Granted)
	s.Equal(uint64(4500), noop.Record.Experience)

	// Both the retired source and the successor show up for the owner.
	listed, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{
		Owner: "0xa",
	})
	s.Require().NoError(err)
	s.Equal(2, listed.TotalMatching)

	// Power doubles on the evolved source.
	sourcePower, err := s.orchestrator.GetPower(s.ctx, &charactersvc.GetPowerInput{TokenID: tokenID})
	s.Require().NoError(err)
	expected := evolved.Source.Attributes.Sum() * uint64(evolved.Source.Level) * 2
	s.Equal(expected, sourcePower.Power)

	// Transfer the successor away; the index follows.
	_, err = s.orchestrator.TransferCharacter(s.ctx, &charactersvc.TransferCharacterInput{
		TokenID: evolved.Successor.ID,
		To:      "0xB",
	})
	s.Require().NoError(err)

	afterTransfer, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{
		Owner: "0xA",
	})
	s.Require().NoError(err)
	s.Equal(1, afterTransfer.TotalMatching)

	newOwner, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{
		Owner: "0xB",
	})
	s.Require().NoError(err)
	s.Equal(1, newOwner.TotalMatching)
}

func (s *LifecycleTestSuite) TestSeasonAdvancesBetweenMints() {
	s.expectGeneration()
	first, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeMage,
	})
	s.Require().NoError(err)
	s.Equal(uint32(1), first.Record.SeasonID)

	advanced, err := s.orchestrator.AdvanceSeason(s.ctx, &charactersvc.AdvanceSeasonInput{})
	s.Require().NoError(err)
	s.Equal(uint32(2), advanced.SeasonID)

	s.expectGeneration()
	second, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeMage,
	})
	s.Require().NoError(err)
	s.Equal(uint32(2), second.Record.SeasonID)

	// The first record keeps its mint-time season.
	got, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{
		TokenID: first.Record.ID,
	})
	s.Require().NoError(err)
	s.Equal(uint32(1), got.Record.SeasonID)
}

func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}
