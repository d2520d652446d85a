// Package registry implements the owner read path: enumerating the
// characters an address holds, with their full on-chain state.
//
// Two read paths exist. The default walks every minted token id and reads
// its owner, which is linear in total supply per call. When an owner index
// is configured it replaces the walk with a set lookup; both paths must
// return identical results, so indexed ids are still verified against
// current ledger state before they are returned.
package registry

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/heroforge/heroforge-api/internal/clients/ledger"
	"github.com/heroforge/heroforge-api/internal/entities"
	"github.com/heroforge/heroforge-api/internal/errors"
	"github.com/heroforge/heroforge-api/internal/repositories/tokenindex"
)

const (
	// DefaultPageSize is used when the caller does not specify one.
	DefaultPageSize = 20

	// MaxPageSize caps a single page.
	MaxPageSize = 100
)

// Registry enumerates characters by owner.
type Registry struct {
	ledger ledger.Client
	index  tokenindex.Repository
	log    *slog.Logger
}

// Config holds the Registry dependencies.
type Config struct {
	Ledger ledger.Client

	// Index is optional. When set it is used instead of the full scan.
	Index tokenindex.Repository

	Logger *slog.Logger
}

// Validate ensures required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	return vb.Build()
}

// New creates a Registry.
func New(cfg *Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Registry{
		ledger: cfg.Ledger,
		index:  cfg.Index,
		log:    log,
	}, nil
}

// ListByOwnerInput defines the input for listing characters by owner
type ListByOwnerInput struct {
	Owner string

	// Page is 1-based. Zero means the first page.
	Page int

	// PageSize is clamped to MaxPageSize. Zero means DefaultPageSize.
	PageSize int
}

// ListByOwnerOutput defines the output for listing characters by owner
type ListByOwnerOutput struct {
	// Records holds the requested page, in ascending token id order.
	Records []*entities.CharacterRecord

	// TotalMatching counts every token the owner holds, not just the page.
	TotalMatching int

	Page     int
	PageSize int
}

// ListByOwner returns one page of the characters held by an address.
// Owner comparison is case-insensitive. Pagination is applied after
// filtering, so TotalMatching is exact regardless of the page requested.
func (r *Registry) ListByOwner(ctx context.Context, input *ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Owner) == "" {
		return nil, errors.InvalidArgument("owner is required")
	}
	if input.Page < 0 {
		return nil, errors.InvalidArgument("page cannot be negative")
	}
	if input.PageSize < 0 {
		return nil, errors.InvalidArgument("pageSize cannot be negative")
	}

	page := input.Page
	if page == 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	ids, err := r.candidateIDs(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.CharacterRecord, 0, len(ids))
	for _, id := range ids {
		record, err := r.ledger.ReadRecord(ctx, &ledger.ReadRecordInput{TokenID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// The index can lag a burn or reorg; skip rather than fail.
				continue
			}
			return nil, errors.Wrapf(err, "failed to read record %d", id)
		}
		if strings.EqualFold(record.Record.Owner, input.Owner) {
			matched = append(matched, record.Record)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	offset := (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	return &ListByOwnerOutput{
		Records:       matched[offset:end],
		TotalMatching: total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// candidateIDs returns the token ids worth reading for an owner: the
// indexed set when an index is configured, otherwise every minted id.
func (r *Registry) candidateIDs(ctx context.Context, owner string) ([]uint64, error) {
	if r.index != nil {
		out, err := r.index.ListByOwner(ctx, tokenindex.ListByOwnerInput{Owner: owner})
		if err == nil {
			return out.TokenIDs, nil
		}
		// Index trouble degrades to the scan instead of failing the read.
		r.log.WarnContext(ctx, "owner index unavailable, falling back to scan",
			"owner", owner,
			"error", err)
	}

	supply, err := r.ledger.ReadTotalSupply(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read total supply")
	}

	ids := make([]uint64, 0, supply.TotalSupply)
	for id := uint64(1); id <= supply.TotalSupply; id++ {
		owned, err := r.ledger.ReadOwner(ctx, &ledger.ReadOwnerInput{TokenID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read owner of token %d", id)
		}
		if strings.EqualFold(owned.Owner, owner) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
