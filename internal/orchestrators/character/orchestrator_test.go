package character_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/heroforge/heroforge-api/internal/clients/content"
	contentmock "github.com/heroforge/heroforge-api/internal/clients/content/mock"
	"github.com/heroforge/heroforge-api/internal/clients/generation"
	generationmock "github.com/heroforge/heroforge-api/internal/clients/generation/mock"
	"github.com/heroforge/heroforge-api/internal/clients/ledger"
	ledgermock "github.com/heroforge/heroforge-api/internal/clients/ledger/mock"
	"github.com/heroforge/heroforge-api/internal/engine"
	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
	"github.com/heroforge/heroforge-api/internal/orchestrators/character"
	"github.com/heroforge/heroforge-api/internal/pkg/idgen"
	"github.com/heroforge/heroforge-api/internal/registry"
	tokenindexmock "github.com/heroforge/heroforge-api/internal/repositories/tokenindex/mock"
	"github.com/heroforge/heroforge-api/internal/rules"
	charactersvc "github.com/heroforge/heroforge-api/internal/services/character"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGenerator *generationmock.MockClient
	mockPublisher *contentmock.MockPublisher
	mockLedger    *ledgermock.MockClient
	mockIndex     *tokenindexmock.MockRepository
	orchestrator  *character.Orchestrator
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGenerator = generationmock.NewMockClient(s.ctrl)
	s.mockPublisher = contentmock.NewMockPublisher(s.ctrl)
	s.mockLedger = ledgermock.NewMockClient(s.ctrl)
	s.mockIndex = tokenindexmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	source := rand.New(rand.NewSource(42)) // #nosec G404
	roller := rules.NewStatRollerWithSource(func(sides int) (int, error) {
		return source.Intn(sides) + 1, nil
	})

	reg, err := registry.New(&registry.Config{Ledger: s.mockLedger})
	s.Require().NoError(err)

	orchestrator, err := character.New(&character.Config{
		StatRoller: roller,
		Generator:  s.mockGenerator,
		Publisher:  s.mockPublisher,
		Ledger:     s.mockLedger,
		Registry:   reg,
		Engine:     engine.New(nil),
		Index:      s.mockIndex,
		IDGen:      idgen.NewSequential("saga"),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) narrative() *generation.NarrativeOutput {
	return &generation.NarrativeOutput{
		Name:        "Kaelen Stormguard",
		Backstory:   "Raised by border wardens in the northern marches.",
		Appearance:  "Scarred, broad-shouldered, grey cloak.",
		Personality: "Stoic and loyal.",
	}
}

func (s *OrchestratorTestSuite) freshRecord(id uint64, owner string) *entities.CharacterRecord {
	return &entities.CharacterRecord{
		ID:    id,
		Owner: owner,
		Attributes: entities.AttributeSet{
			Strength: 15, Dexterity: 12, Constitution: 14,
			Intelligence: 10, Wisdom: 11, Charisma: 10,
		},
		Experience:  0,
		Level:       1,
		SeasonID:    1,
		Evolved:     false,
		MetadataURI: "ipfs://QmMeta",
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Success() {
	var publishedMetadata *entities.TokenMetadata
	var mintInput *ledger.MintInput

	s.mockGenerator.EXPECT().
		GenerateNarrative(gomock.Any(), gomock.Any()).
		Return(s.narrative(), nil)
	s.mockGenerator.EXPECT().
		GeneratePortrait(gomock.Any(), gomock.Any()).
		Return(&generation.PortraitOutput{Image: []byte("png-bytes")}, nil)
	s.mockPublisher.EXPECT().
		PublishBytes(gomock.Any(), gomock.Any()).
		Return(&content.PublishOutput{URI: "ipfs://QmImage"}, nil)
	s.mockPublisher.EXPECT().
		PublishJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *content.PublishJSONInput) (*content.PublishOutput, error) {
			publishedMetadata = input.Value.(*entities.TokenMetadata)
			return &content.PublishOutput{URI: "ipfs://QmMeta"}, nil
		})
	s.mockLedger.EXPECT().
		Mint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledger.MintInput) (*ledger.MintOutput, error) {
			mintInput = input
			return &ledger.MintOutput{TokenID: 1, TxRef: "0xabc"}, nil
		})
	s.mockIndex.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), gomock.Any()).
		Return(&ledger.ReadRecordOutput{Record: s.freshRecord(1, "0xA")}, nil)

	out, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeWarrior,
		Tone:         "heroic",
	})
	s.Require().NoError(err)

	s.Equal(uint64(1), out.Record.ID)
	s.Equal(entities.ArchetypeWarrior, out.Archetype)
	s.Equal("0xabc", out.TxRef)
	s.Equal("Kaelen Stormguard", out.Artifact.Name)
	s.Equal("ipfs://QmImage", out.Artifact.ImageURI)
	s.Equal("ipfs://QmMeta", out.Artifact.MetadataURI)

	// Minted attributes stay within the warrior bounds.
	ceilings, ok := rules.Ceilings(entities.ArchetypeWarrior)
	s.Require().True(ok)
	s.Require().NotNil(mintInput)
	for i, v := range mintInput.Attributes.Array() {
		s.GreaterOrEqual(v, uint32(rules.AttributeFloor))
		s.LessOrEqual(v, ceilings[i])
	}
	s.Equal("ipfs://QmMeta", mintInput.MetadataURI)

	// The metadata document carries the stable attribute ordering.
	s.Require().NotNil(publishedMetadata)
	s.Equal("Kaelen Stormguard", publishedMetadata.Name)
	s.Equal("ipfs://QmImage", publishedMetadata.Image)
	s.Require().Len(publishedMetadata.Attributes, 9)
	s.Equal("archetype", publishedMetadata.Attributes[0].TraitType)
	s.Equal("level", publishedMetadata.Attributes[1].TraitType)
	s.Equal("strength", publishedMetadata.Attributes[2].TraitType)
	s.Equal("personality", publishedMetadata.Attributes[8].TraitType)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_InvalidArchetype() {
	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    "necromancer",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_MissingOwner() {
	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		Archetype: entities.ArchetypeMage,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_NarrativeFailure() {
	s.mockGenerator.EXPECT().
		GenerateNarrative(gomock.Any(), gomock.Any()).
		Return(nil, errors.GenerationFailed("model overloaded"))

	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeMage,
	})
	s.Require().Error(err)
	s.True(errors.IsGenerationFailed(err))
	s.Equal(character.StageNarrative, errors.GetStage(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_PortraitFailureNeverMints() {
	s.mockGenerator.EXPECT().
		GenerateNarrative(gomock.Any(), gomock.Any()).
		Return(s.narrative(), nil)
	s.mockGenerator.EXPECT().
		GeneratePortrait(gomock.Any(), gomock.Any()).
		Return(nil, errors.GenerationFailed("image model unavailable"))
	// No publish or mint expectations: the saga must stop here.

	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeRogue,
	})
	s.Require().Error(err)
	s.True(errors.IsGenerationFailed(err))
	s.Equal(character.StagePortrait, errors.GetStage(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_ImagePublishFailure() {
	s.mockGenerator.EXPECT().
		GenerateNarrative(gomock.Any(), gomock.Any()).
		Return(s.narrative(), nil)
	s.mockGenerator.EXPECT().
		GeneratePortrait(gomock.Any(), gomock.Any()).
		Return(&generation.PortraitOutput{Image: []byte("png-bytes")}, nil)
	s.mockPublisher.EXPECT().
		PublishBytes(gomock.Any(), gomock.Any()).
		Return(nil, errors.PublishFailed("pin quota exceeded"))

	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeCleric,
	})
	s.Require().Error(err)
	s.True(errors.IsPublishFailed(err))
	s.Equal(character.StageImagePublish, errors.GetStage(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_MetadataPublishFailure() {
	s.mockGenerator.EXPECT().
		GenerateNarrative(gomock.Any(), gomock.Any()).
		Return(s.narrative(), nil)
	s.mockGenerator.EXPECT().
		GeneratePortrait(gomock.Any(), gomock.Any()).
		Return(&generation.PortraitOutput{Image: []byte("png-bytes")}, nil)
	s.mockPublisher.EXPECT().
		PublishBytes(gomock.Any(), gomock.Any()).
		Return(&content.PublishOutput{URI: "ipfs://QmImage"}, nil)
	s.mockPublisher.EXPECT().
		PublishJSON(gomock.Any(), gomock.Any()).
		Return(nil, errors.PublishFailed("pin rejected"))

	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeBard,
	})
	s.Require().Error(err)
	s.True(errors.IsPublishFailed(err))
	s.Equal(character.StageMetadataPublish, errors.GetStage(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_MintFailure() {
	s.mockGenerator.EXPECT().
		GenerateNarrative(gomock.Any(), gomock.Any()).
		Return(s.narrative(), nil)
	s.mockGenerator.EXPECT().
		GeneratePortrait(gomock.Any(), gomock.Any()).
		Return(&generation.PortraitOutput{Image: []byte("png-bytes")}, nil)
	s.mockPublisher.EXPECT().
		PublishBytes(gomock.Any(), gomock.Any()).
		Return(&content.PublishOutput{URI: "ipfs://QmImage"}, nil)
	s.mockPublisher.EXPECT().
		PublishJSON(gomock.Any(), gomock.Any()).
		Return(&content.PublishOutput{URI: "ipfs://QmMeta"}, nil)
	s.mockLedger.EXPECT().
		Mint(gomock.Any(), gomock.Any()).
		Return(nil, errors.LedgerFailed("transaction reverted"))

	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		OwnerAddress: "0xA",
		Archetype:    entities.ArchetypeWarrior,
	})
	s.Require().Error(err)
	s.True(errors.IsLedgerFailed(err))
	s.Equal(character.StageMint, errors.GetStage(err))
}

func (s *OrchestratorTestSuite) TestGrantExperience_Success() {
	fresh := s.freshRecord(1, "0xA")
	leveled := s.freshRecord(1, "0xA")
	leveled.Experience = 2500
	leveled.Level = 3

	gomock.InOrder(
		s.mockLedger.EXPECT().
			ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
			Return(&ledger.ReadRecordOutput{Record: fresh}, nil),
		s.mockLedger.EXPECT().
			GrantExperience(gomock.Any(), &ledger.GrantExperienceInput{TokenID: 1, Amount: 2500}).
			Return(&ledger.GrantExperienceOutput{TxRef: "0xdef", NewLevel: 3}, nil),
		s.mockLedger.EXPECT().
			ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
			Return(&ledger.ReadRecordOutput{Record: leveled}, nil),
	)

	out, err := s.orchestrator.GrantExperience(s.ctx, &charactersvc.GrantExperienceInput{
		TokenID: 1,
		Amount:  2500,
	})
	s.Require().NoError(err)

	s.True(out.Granted)
	s.True(out.LeveledUp)
	s.Equal(uint32(3), out.NewLevel)
	s.Equal(uint64(2500), out.Record.Experience)
	s.Equal("0xdef", out.TxRef)
}

func (s *OrchestratorTestSuite) TestGrantExperience_EvolvedRecordIsNoOp() {
	retired := s.freshRecord(1, "0xA")
	retired.Level = 5
	retired.Evolved = true

	// Only the read: nothing is submitted for a retired record.
	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
		Return(&ledger.ReadRecordOutput{Record: retired}, nil)

	out, err := s.orchestrator.GrantExperience(s.ctx, &charactersvc.GrantExperienceInput{
		TokenID: 1,
		Amount:  500,
	})
	s.Require().NoError(err)

	s.False(out.Granted)
	s.False(out.LeveledUp)
	s.Equal(uint32(5), out.NewLevel)
	s.Empty(out.TxRef)
}

func (s *OrchestratorTestSuite) TestGrantExperience_NegativeAmount() {
	_, err := s.orchestrator.GrantExperience(s.ctx, &charactersvc.GrantExperienceInput{
		TokenID: 1,
		Amount:  -100,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEvolveCharacter_Success() {
	source := s.freshRecord(1, "0xA")
	source.Level = 5
	source.Experience = 4200

	retired := *source
	retired.Evolved = true

	successor := s.freshRecord(2, "0xA")
	successor.SeasonID = 2

	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
		Return(&ledger.ReadRecordOutput{Record: source}, nil)
	s.mockGenerator.EXPECT().
		GenerateNarrative(gomock.Any(), gomock.Any()).
		Return(s.narrative(), nil)
	s.mockGenerator.EXPECT().
		GeneratePortrait(gomock.Any(), gomock.Any()).
		Return(&generation.PortraitOutput{Image: []byte("png-bytes")}, nil)
	s.mockPublisher.EXPECT().
		PublishBytes(gomock.Any(), gomock.Any()).
		Return(&content.PublishOutput{URI: "ipfs://QmImage2"}, nil)
	s.mockPublisher.EXPECT().
		PublishJSON(gomock.Any(), gomock.Any()).
		Return(&content.PublishOutput{URI: "ipfs://QmMeta2"}, nil)
	s.mockLedger.EXPECT().
		Evolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledger.EvolveInput) (*ledger.EvolveOutput, error) {
			s.Equal(uint64(1), input.TokenID)
			s.Equal("ipfs://QmMeta2", input.MetadataURI)
			return &ledger.EvolveOutput{NewTokenID: 2, TxRef: "0xbeef"}, nil
		})
	s.mockIndex.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
		Return(&ledger.ReadRecordOutput{Record: &retired}, nil)
	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 2}).
		Return(&ledger.ReadRecordOutput{Record: successor}, nil)

	out, err := s.orchestrator.EvolveCharacter(s.ctx, &charactersvc.EvolveCharacterInput{
		TokenID:   1,
		Archetype: entities.ArchetypeWarrior,
	})
	s.Require().NoError(err)

	s.True(out.Source.Evolved)
	s.Equal(uint64(2), out.Successor.ID)
	s.Equal(uint32(1), out.Successor.Level)
	s.False(out.Successor.Evolved)
	s.Equal("0xbeef", out.TxRef)
	s.Equal("ipfs://QmMeta2", out.Artifact.MetadataURI)
}

func (s *OrchestratorTestSuite) TestEvolveCharacter_UnderLevel() {
	source := s.freshRecord(1, "0xA")
	source.Level = 3

	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
		Return(&ledger.ReadRecordOutput{Record: source}, nil)
	// No generation, publish, or evolve expectations.

	_, err := s.orchestrator.EvolveCharacter(s.ctx, &charactersvc.EvolveCharacterInput{
		TokenID:   1,
		Archetype: entities.ArchetypeWarrior,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEvolveCharacter_AlreadyEvolved() {
	source := s.freshRecord(1, "0xA")
	source.Level = 5
	source.Evolved = true

	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
		Return(&ledger.ReadRecordOutput{Record: source}, nil)

	_, err := s.orchestrator.EvolveCharacter(s.ctx, &charactersvc.EvolveCharacterInput{
		TokenID:   1,
		Archetype: entities.ArchetypeWarrior,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestTransferCharacter_Success() {
	moved := s.freshRecord(1, "0xB")

	gomock.InOrder(
		s.mockLedger.EXPECT().
			ReadOwner(gomock.Any(), &ledger.ReadOwnerInput{TokenID: 1}).
			Return(&ledger.ReadOwnerOutput{Owner: "0xA"}, nil),
		s.mockLedger.EXPECT().
			Transfer(gomock.Any(), &ledger.TransferInput{TokenID: 1, To: "0xB"}).
			Return(&ledger.TransferOutput{TxRef: "0xfeed"}, nil),
	)
	s.mockIndex.EXPECT().
		Remove(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	s.mockIndex.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
		Return(&ledger.ReadRecordOutput{Record: moved}, nil)

	out, err := s.orchestrator.TransferCharacter(s.ctx, &charactersvc.TransferCharacterInput{
		TokenID: 1,
		To:      "0xB",
	})
	s.Require().NoError(err)

	s.Equal("0xB", out.Record.Owner)
	s.Equal("0xfeed", out.TxRef)
}

func (s *OrchestratorTestSuite) TestGetPower() {
	record := s.freshRecord(1, "0xA")
	record.Level = 3 // attribute sum is 72

	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 1}).
		Return(&ledger.ReadRecordOutput{Record: record}, nil)

	out, err := s.orchestrator.GetPower(s.ctx, &charactersvc.GetPowerInput{
		TokenID:       1,
		SeasonalBonus: 25,
	})
	s.Require().NoError(err)

	s.Equal(record.Attributes.Sum()*3+25, out.Power)
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	owned := s.freshRecord(2, "0xA")

	s.mockLedger.EXPECT().
		ReadTotalSupply(gomock.Any()).
		Return(&ledger.ReadTotalSupplyOutput{TotalSupply: 3}, nil)
	s.mockLedger.EXPECT().
		ReadOwner(gomock.Any(), &ledger.ReadOwnerInput{TokenID: 1}).
		Return(&ledger.ReadOwnerOutput{Owner: "0xOther"}, nil)
	s.mockLedger.EXPECT().
		ReadOwner(gomock.Any(), &ledger.ReadOwnerInput{TokenID: 2}).
		Return(&ledger.ReadOwnerOutput{Owner: "0xA"}, nil)
	s.mockLedger.EXPECT().
		ReadOwner(gomock.Any(), &ledger.ReadOwnerInput{TokenID: 3}).
		Return(&ledger.ReadOwnerOutput{Owner: "0xOther"}, nil)
	s.mockLedger.EXPECT().
		ReadRecord(gomock.Any(), &ledger.ReadRecordInput{TokenID: 2}).
		Return(&ledger.ReadRecordOutput{Record: owned}, nil)

	out, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{
		Owner: "0xA",
	})
	s.Require().NoError(err)

	s.Equal(1, out.TotalMatching)
	s.Require().Len(out.Records, 1)
	s.Equal(uint64(2), out.Records[0].ID)
}

func (s *OrchestratorTestSuite) TestAdvanceSeason() {
	s.mockLedger.EXPECT().
		AdvanceSeason(gomock.Any()).
		Return(&ledger.AdvanceSeasonOutput{SeasonID: 2, TxRef: "0xaaaa"}, nil)

	out, err := s.orchestrator.AdvanceSeason(s.ctx, &charactersvc.AdvanceSeasonInput{})
	s.Require().NoError(err)

	s.Equal(uint32(2), out.SeasonID)
	s.Equal("0xaaaa", out.TxRef)
}

func (s *OrchestratorTestSuite) TestGetCurrentSeason() {
	s.mockLedger.EXPECT().
		ReadCurrentSeason(gomock.Any()).
		Return(&ledger.ReadCurrentSeasonOutput{SeasonID: 4}, nil)

	out, err := s.orchestrator.GetCurrentSeason(s.ctx, &charactersvc.GetCurrentSeasonInput{})
	s.Require().NoError(err)

	s.Equal(uint32(4), out.SeasonID)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
