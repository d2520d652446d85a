package tokenindex

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/heroforge/heroforge-api/internal/errors"
	redisclient "github.com/heroforge/heroforge-api/internal/redis"
)

const (
	ownerIndexPrefix = "tokenindex:owner:"

	errOwnerEmpty   = "owner address cannot be empty"
	errTokenIDEmpty = "token ID cannot be zero"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis token index.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed token index
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

// ownerKey normalizes the owner address so lookups are case-insensitive,
// matching the registry's owner comparison.
func ownerKey(owner string) string {
	return ownerIndexPrefix + strings.ToLower(owner)
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}
	if input.TokenID == 0 {
		return nil, errors.InvalidArgument(errTokenIDEmpty)
	}

	key := ownerKey(input.Owner)
	if err := r.client.SAdd(ctx, key, strconv.FormatUint(input.TokenID, 10)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to add token %d to index %s", input.TokenID, key)
	}

	return &AddOutput{}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}
	if input.TokenID == 0 {
		return nil, errors.InvalidArgument(errTokenIDEmpty)
	}

	key := ownerKey(input.Owner)
	if err := r.client.SRem(ctx, key, strconv.FormatUint(input.TokenID, 10)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to remove token %d from index %s", input.TokenID, key)
	}

	return &RemoveOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	key := ownerKey(input.Owner)
	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list tokens from index %s", key)
	}

	tokenIDs := make([]uint64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			// A corrupt member is dropped from the index rather than
			// failing every read.
			slog.WarnContext(ctx, "dropping corrupt index member",
				"index_key", key,
				"member", member)
			r.client.SRem(ctx, key, member)
			continue
		}
		tokenIDs = append(tokenIDs, id)
	}

	sort.Slice(tokenIDs, func(i, j int) bool { return tokenIDs[i] < tokenIDs[j] })

	return &ListByOwnerOutput{TokenIDs: tokenIDs}, nil
}
