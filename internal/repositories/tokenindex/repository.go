// Package tokenindex provides the owner-to-token index. The index is a
// read-path optimization maintained alongside mint, evolve, and transfer;
// the ledger remains authoritative and the registry falls back to a full
// scan when no index is configured. Index reads and scan reads must return
// identical results.
package tokenindex

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=tokenindexmock github.com/heroforge/heroforge-api/internal/repositories/tokenindex Repository

// Repository defines the interface for the owner index
type Repository interface {
	// Add records that an owner holds a token.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Remove drops a token from an owner's holdings.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)

	// ListByOwner returns the owner's token ids in ascending order.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// AddInput defines the input for adding a token to an owner
type AddInput struct {
	Owner   string
	TokenID uint64
}

// AddOutput defines the output for adding a token to an owner
type AddOutput struct{}

// RemoveInput defines the input for removing a token from an owner
type RemoveInput struct {
	Owner   string
	TokenID uint64
}

// RemoveOutput defines the output for removing a token from an owner
type RemoveOutput struct{}

// ListByOwnerInput defines the input for listing an owner's tokens
type ListByOwnerInput struct {
	Owner string
}

// ListByOwnerOutput defines the output for listing an owner's tokens
type ListByOwnerOutput struct {
	TokenIDs []uint64
}
