// Package character implements the character lifecycle orchestrator: the
// creation saga, progression, evolution, transfer, and the owner read path.
//
// The creation saga runs forward-only through its stages; there is no
// compensation. Generation and publish stages are side-effect-free or cheap
// to orphan, and nothing exists on-chain until the final mint succeeds, so a
// failed saga simply surfaces a stage-tagged error and the caller retries
// from scratch. Cancellation is honored between stages, never mid-stage.
package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heroforge/heroforge-api/internal/clients/content"
	"github.com/heroforge/heroforge-api/internal/clients/generation"
	"github.com/heroforge/heroforge-api/internal/clients/ledger"
	"github.com/heroforge/heroforge-api/internal/engine"
	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
	"github.com/heroforge/heroforge-api/internal/pkg/idgen"
	"github.com/heroforge/heroforge-api/internal/registry"
	"github.com/heroforge/heroforge-api/internal/repositories/tokenindex"
	"github.com/heroforge/heroforge-api/internal/rules"
	charactersvc "github.com/heroforge/heroforge-api/internal/services/character"
)

// Saga stage names carried in stage-tagged errors.
const (
	StageAttributes      = "attributes"
	StageNarrative       = "narrative"
	StagePortrait        = "portrait"
	StageImagePublish    = "image_publish"
	StageMetadata        = "metadata"
	StageMetadataPublish = "metadata_publish"
	StageMint            = "mint"
	StageEvolve          = "evolve"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	StatRoller *rules.StatRoller
	Generator  generation.Client
	Publisher  content.Publisher
	Ledger     ledger.Client
	Registry   *registry.Registry
	Engine     *engine.Engine

	// Index is optional. When set, mint, evolve, and transfer keep the
	// owner index in sync; index write failures are logged, never fatal.
	Index tokenindex.Repository

	// IDGen names published artifacts. Defaults to a UUID generator.
	IDGen idgen.Generator

	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.StatRoller == nil {
		vb.RequiredField("StatRoller")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	statRoller *rules.StatRoller
	generator  generation.Client
	publisher  content.Publisher
	ledger     ledger.Client
	registry   *registry.Registry
	engine     *engine.Engine
	index      tokenindex.Repository
	idGen      idgen.Generator
	log        *slog.Logger
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGen
	if idGen == nil {
		idGen = idgen.NewUUID("char")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Orchestrator{
		statRoller: cfg.StatRoller,
		generator:  cfg.Generator,
		publisher:  cfg.Publisher,
		ledger:     cfg.Ledger,
		registry:   cfg.Registry,
		engine:     cfg.Engine,
		index:      cfg.Index,
		idGen:      idGen,
		log:        log,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ charactersvc.Service = (*Orchestrator)(nil)

// CreateCharacter runs the full creation saga: roll stats, generate
// narrative, generate portrait, publish image, build metadata, publish
// metadata, mint. Failures carry the stage that produced them; a failure at
// any stage before mint means nothing was written on-chain.
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *charactersvc.CreateCharacterInput) (*charactersvc.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerAddress", input.OwnerAddress, vb)
	errors.ValidateRequired("archetype", string(input.Archetype), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if _, ok := entities.ParseArchetype(string(input.Archetype)); !ok {
		return nil, errors.InvalidArgumentf("unknown archetype %q, must be one of %v",
			input.Archetype, entities.ArchetypeNames())
	}

	sagaID := o.idGen.Generate()
	log := o.log.With("saga_id", sagaID, "owner", input.OwnerAddress, "archetype", input.Archetype)
	log.InfoContext(ctx, "starting creation saga")

	generated, err := o.generateArtifact(ctx, sagaID, input.Archetype, input.Tone, input.Length, log)
	if err != nil {
		return nil, err
	}

	metadata := entities.NewTokenMetadata(
		input.Archetype, 1, generated.attributes,
		generated.artifact.Name, generated.artifact.Backstory,
		generated.artifact.Personality, generated.artifact.ImageURI,
	)
	metadataURI, err := o.publishMetadata(ctx, sagaID, metadata)
	if err != nil {
		return nil, err
	}
	generated.artifact.MetadataURI = metadataURI

	mintOut, err := o.ledger.Mint(ctx, &ledger.MintInput{
		Owner:       input.OwnerAddress,
		Attributes:  generated.attributes,
		MetadataURI: metadataURI,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeLedgerFailed, "mint transaction failed").
			WithStage(StageMint)
	}

	o.indexAdd(ctx, input.OwnerAddress, mintOut.TokenID)

	record, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: mintOut.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read back minted record %d", mintOut.TokenID)
	}

	log.InfoContext(ctx, "creation saga complete",
		"token_id", mintOut.TokenID,
		"tx_ref", mintOut.TxRef,
		"name", generated.artifact.Name)

	return &charactersvc.CreateCharacterOutput{
		Record:    record.Record,
		Archetype: input.Archetype,
		Artifact:  generated.artifact,
		TxRef:     mintOut.TxRef,
	}, nil
}

// generatedCharacter bundles the off-chain half of a creation or evolution
// saga: rolled attributes plus the published artifact, metadata URI not yet
// filled in.
type generatedCharacter struct {
	attributes entities.AttributeSet
	artifact   *entities.CreationArtifact
}

// generateArtifact runs the generation stages shared by creation and
// evolution: roll, narrative, portrait, image publish.
func (o *Orchestrator) generateArtifact(
	ctx context.Context,
	sagaID string,
	archetype entities.Archetype,
	tone, length string,
	log *slog.Logger,
) (*generatedCharacter, error) {
	attributes, err := o.statRoller.Roll(archetype)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll attributes").WithStage(StageAttributes)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "saga canceled").WithStage(StageNarrative)
	}
	narrative, err := o.generator.GenerateNarrative(ctx, &generation.NarrativeInput{
		Archetype: archetype,
		Tone:      tone,
		Length:    length,
	})
	if err != nil {
		return nil, errors.Wrap(err, "narrative generation failed").WithStage(StageNarrative)
	}
	log.InfoContext(ctx, "narrative generated", "name", narrative.Name)

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "saga canceled").WithStage(StagePortrait)
	}
	portrait, err := o.generator.GeneratePortrait(ctx, &generation.PortraitInput{
		Description: narrative.Appearance,
	})
	if err != nil {
		return nil, errors.Wrap(err, "portrait generation failed").WithStage(StagePortrait)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "saga canceled").WithStage(StageImagePublish)
	}
	imageOut, err := o.publisher.PublishBytes(ctx, &content.PublishBytesInput{
		Data:        portrait.Image,
		DisplayName: fmt.Sprintf("%s_portrait.png", sagaID),
		ContentType: "image/png",
	})
	if err != nil {
		return nil, errors.Wrap(err, "image publish failed").WithStage(StageImagePublish)
	}
	log.InfoContext(ctx, "portrait published", "image_uri", imageOut.URI)

	return &generatedCharacter{
		attributes: attributes,
		artifact: &entities.CreationArtifact{
			Name:        narrative.Name,
			Backstory:   narrative.Backstory,
			Appearance:  narrative.Appearance,
			Personality: narrative.Personality,
			ImageURI:    imageOut.URI,
		},
	}, nil
}

// publishMetadata publishes the metadata document and returns its URI.
func (o *Orchestrator) publishMetadata(ctx context.Context, sagaID string, metadata *entities.TokenMetadata) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeCanceled, "saga canceled").WithStage(StageMetadataPublish)
	}

	out, err := o.publisher.PublishJSON(ctx, &content.PublishJSONInput{
		Value:       metadata,
		DisplayName: fmt.Sprintf("%s_metadata.json", sagaID),
	})
	if err != nil {
		return "", errors.Wrap(err, "metadata publish failed").WithStage(StageMetadataPublish)
	}
	return out.URI, nil
}

// GrantExperience submits an experience gain for a record. Granting to an
// evolved record is an explicit no-op: the unchanged record is returned with
// Granted=false and nothing reaches the ledger.
func (o *Orchestrator) GrantExperience(ctx context.Context, input *charactersvc.GrantExperienceInput) (*charactersvc.GrantExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("amount", input.Amount, vb)
	if input.TokenID == 0 {
		vb.RequiredField("tokenID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	current, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: input.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read record %d", input.TokenID)
	}

	if current.Record.Evolved {
		o.log.InfoContext(ctx, "experience grant skipped for retired record",
			"token_id", input.TokenID)
		return &charactersvc.GrantExperienceOutput{
			Record:   current.Record,
			Granted:  false,
			NewLevel: current.Record.Level,
		}, nil
	}

	// The engine validates the transition and predicts the outcome; the
	// contract recomputes it on-chain and remains authoritative.
	applied, err := o.engine.ApplyExperience(*current.Record, input.Amount)
	if err != nil {
		return nil, err
	}

	grantOut, err := o.ledger.GrantExperience(ctx, &ledger.GrantExperienceInput{
		TokenID: input.TokenID,
		Amount:  uint64(input.Amount),
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeLedgerFailed,
			"grantExperience transaction failed")
	}

	updated, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: input.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read back record %d", input.TokenID)
	}

	o.log.InfoContext(ctx, "experience granted",
		"token_id", input.TokenID,
		"amount", input.Amount,
		"new_level", grantOut.NewLevel,
		"leveled_up", applied.LeveledUp)

	return &charactersvc.GrantExperienceOutput{
		Record:    updated.Record,
		Granted:   true,
		LeveledUp: applied.LeveledUp,
		NewLevel:  grantOut.NewLevel,
		TxRef:     grantOut.TxRef,
	}, nil
}

// EvolveCharacter retires an eligible record and mints its successor. The
// successor gets freshly generated attributes, narrative, portrait, and
// metadata, mirroring creation; the ledger then performs the retire-and-mint
// atomically.
func (o *Orchestrator) EvolveCharacter(ctx context.Context, input *charactersvc.EvolveCharacterInput) (*charactersvc.EvolveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.TokenID == 0 {
		vb.RequiredField("tokenID")
	}
	errors.ValidateRequired("archetype", string(input.Archetype), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if _, ok := entities.ParseArchetype(string(input.Archetype)); !ok {
		return nil, errors.InvalidArgumentf("unknown archetype %q, must be one of %v",
			input.Archetype, entities.ArchetypeNames())
	}

	source, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: input.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read record %d", input.TokenID)
	}

	if err := o.engine.ValidateEvolution(*source.Record); err != nil {
		return nil, err
	}

	sagaID := o.idGen.Generate()
	log := o.log.With("saga_id", sagaID, "source_token_id", input.TokenID, "archetype", input.Archetype)
	log.InfoContext(ctx, "starting evolution saga")

	generated, err := o.generateArtifact(ctx, sagaID, input.Archetype, input.Tone, input.Length, log)
	if err != nil {
		return nil, err
	}

	metadata := entities.NewTokenMetadata(
		input.Archetype, 1, generated.attributes,
		generated.artifact.Name, generated.artifact.Backstory,
		generated.artifact.Personality, generated.artifact.ImageURI,
	)
	metadataURI, err := o.publishMetadata(ctx, sagaID, metadata)
	if err != nil {
		return nil, err
	}
	generated.artifact.MetadataURI = metadataURI

	evolveOut, err := o.ledger.Evolve(ctx, &ledger.EvolveInput{
		TokenID:     input.TokenID,
		Attributes:  generated.attributes,
		MetadataURI: metadataURI,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeLedgerFailed, "evolve transaction failed").
			WithStage(StageEvolve)
	}

	o.indexAdd(ctx, source.Record.Owner, evolveOut.NewTokenID)

	retired, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: input.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read back retired record %d", input.TokenID)
	}
	successor, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: evolveOut.NewTokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read back successor record %d", evolveOut.NewTokenID)
	}

	log.InfoContext(ctx, "evolution saga complete",
		"successor_token_id", evolveOut.NewTokenID,
		"tx_ref", evolveOut.TxRef)

	return &charactersvc.EvolveCharacterOutput{
		Source:    retired.Record,
		Successor: successor.Record,
		Artifact:  generated.artifact,
		TxRef:     evolveOut.TxRef,
	}, nil
}

// GetPower computes the record's effective power. Power is recomputed from
// current ledger state on every call, never cached.
func (o *Orchestrator) GetPower(ctx context.Context, input *charactersvc.GetPowerInput) (*charactersvc.GetPowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TokenID == 0 {
		return nil, errors.InvalidArgument("tokenID is required")
	}

	record, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: input.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read record %d", input.TokenID)
	}

	return &charactersvc.GetPowerOutput{
		Power:  o.engine.Power(*record.Record, input.SeasonalBonus),
		Record: record.Record,
	}, nil
}

// TransferCharacter moves a token to a new owner and keeps the owner index
// in sync.
func (o *Orchestrator) TransferCharacter(ctx context.Context, input *charactersvc.TransferCharacterInput) (*charactersvc.TransferCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.TokenID == 0 {
		vb.RequiredField("tokenID")
	}
	errors.ValidateRequired("to", input.To, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	previous, err := o.ledger.ReadOwner(ctx, &ledger.ReadOwnerInput{TokenID: input.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read owner of token %d", input.TokenID)
	}

	transferOut, err := o.ledger.Transfer(ctx, &ledger.TransferInput{
		TokenID: input.TokenID,
		To:      input.To,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeLedgerFailed, "transfer transaction failed")
	}

	o.indexRemove(ctx, previous.Owner, input.TokenID)
	o.indexAdd(ctx, input.To, input.TokenID)

	record, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: input.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read back record %d", input.TokenID)
	}

	o.log.InfoContext(ctx, "character transferred",
		"token_id", input.TokenID,
		"from", previous.Owner,
		"to", input.To,
		"tx_ref", transferOut.TxRef)

	return &charactersvc.TransferCharacterOutput{
		Record: record.Record,
		TxRef:  transferOut.TxRef,
	}, nil
}

// GetCharacter reads a single record.
func (o *Orchestrator) GetCharacter(ctx context.Context, input *charactersvc.GetCharacterInput) (*charactersvc.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TokenID == 0 {
		return nil, errors.InvalidArgument("tokenID is required")
	}

	record, err := o.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: input.TokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read record %d", input.TokenID)
	}

	return &charactersvc.GetCharacterOutput{Record: record.Record}, nil
}

// ListCharacters returns one page of the characters an address holds.
func (o *Orchestrator) ListCharacters(ctx context.Context, input *charactersvc.ListCharactersInput) (*charactersvc.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.registry.ListByOwner(ctx, &registry.ListByOwnerInput{
		Owner:    input.Owner,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &charactersvc.ListCharactersOutput{
		Records:       out.Records,
		TotalMatching: out.TotalMatching,
		Page:          out.Page,
		PageSize:      out.PageSize,
	}, nil
}

// AdvanceSeason increments the global season counter. Admin operation; never
// a side effect of anything else.
func (o *Orchestrator) AdvanceSeason(ctx context.Context, _ *charactersvc.AdvanceSeasonInput) (*charactersvc.AdvanceSeasonOutput, error) {
	out, err := o.ledger.AdvanceSeason(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeLedgerFailed, "advanceSeason transaction failed")
	}

	o.log.InfoContext(ctx, "season advanced", "season_id", out.SeasonID, "tx_ref", out.TxRef)

	return &charactersvc.AdvanceSeasonOutput{
		SeasonID: out.SeasonID,
		TxRef:    out.TxRef,
	}, nil
}

// GetCurrentSeason reads the global season counter.
func (o *Orchestrator) GetCurrentSeason(ctx context.Context, _ *charactersvc.GetCurrentSeasonInput) (*charactersvc.GetCurrentSeasonOutput, error) {
	out, err := o.ledger.ReadCurrentSeason(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read current season")
	}

	return &charactersvc.GetCurrentSeasonOutput{SeasonID: out.SeasonID}, nil
}

// indexAdd best-effort adds a token to the owner index.
func (o *Orchestrator) indexAdd(ctx context.Context, owner string, tokenID uint64) {
	if o.index == nil {
		return
	}
	if _, err := o.index.Add(ctx, tokenindex.AddInput{Owner: owner, TokenID: tokenID}); err != nil {
		o.log.WarnContext(ctx, "failed to update owner index",
			"owner", owner,
			"token_id", tokenID,
			"error", err)
	}
}

// indexRemove best-effort removes a token from the owner index.
func (o *Orchestrator) indexRemove(ctx context.Context, owner string, tokenID uint64) {
	if o.index == nil {
		return
	}
	if _, err := o.index.Remove(ctx, tokenindex.RemoveInput{Owner: owner, TokenID: tokenID}); err != nil {
		o.log.WarnContext(ctx, "failed to update owner index",
			"owner", owner,
			"token_id", tokenID,
			"error", err)
	}
}
