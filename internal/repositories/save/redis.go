package save

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/vjstudio/career-api/internal/errors"
	redisclient "github.com/vjstudio/career-api/internal/redis"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis save repository.
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

// NewRedis creates a new Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if !ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument("record cannot be nil")
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save record")
	}

	// Saves never expire
	if err := r.client.Set(ctx, SlotKey(input.Slot), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write save slot %d", input.Slot)
	}

	return &PutOutput{Record: input.Record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if !ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}

	result, err := r.client.Get(ctx, SlotKey(input.Slot)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save slot %d is empty", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to read save slot %d", input.Slot)
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss,
			"save record is corrupt")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if !ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}

	removed, err := r.client.Del(ctx, SlotKey(input.Slot)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save slot %d", input.Slot)
	}

	return &DeleteOutput{Existed: removed > 0}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	out := &ListOutput{}
	for slot := MinUserSlot; slot <= MaxSlot; slot++ {
		getOutput, err := r.Get(ctx, GetInput{Slot: slot})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			if errors.IsDataLoss(err) {
				slog.WarnContext(ctx, "skipping corrupt save record",
					"slot", slot,
					"error", err.Error())
				continue
			}
			return nil, err
		}
		out.Slots[slot-MinUserSlot] = getOutput.Record
	}
	return out, nil
}
