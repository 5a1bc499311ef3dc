package ocrcache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-converter/internal/redis"
)

const (
	// Key pattern: ocr_text:{sha256}
	keyPrefix = "ocr_text:"

	// DefaultTTL keeps text for a week of re-runs
	DefaultTTL = 7 * 24 * time.Hour

	errHashEmpty = "image hash cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL applied when PutInput.TTL is zero. Zero means DefaultTTL.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for OCR text
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ImageHash == "" {
		return nil, errors.InvalidArgument(errHashEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.ImageHash)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound("ocr text not cached").WithMeta("image_hash", input.ImageHash)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get ocr text from Redis")
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ocr entry")
	}

	// Redis expiry and our clock can disagree; trust the recorded expiry
	if r.clock.Now().After(entry.ExpiresAt) {
		_ = r.client.Del(ctx, buildKey(input.ImageHash))
		return nil, errors.NotFound("ocr text has expired").WithMeta("image_hash", input.ImageHash)
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.ImageHash == "" {
		return nil, errors.InvalidArgument(errHashEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument("ttl cannot be negative")
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	entry := &Entry{
		ImageHash: input.ImageHash,
		Source:    input.Source,
		Text:      input.Text,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ocr entry")
	}

	if err := r.client.Set(ctx, buildKey(input.ImageHash), data, ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store ocr text in Redis")
	}

	return &PutOutput{Entry: entry}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ImageHash == "" {
		return nil, errors.InvalidArgument(errHashEmpty)
	}

	n, err := r.client.Del(ctx, buildKey(input.ImageHash)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete ocr text from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func (r *redisRepository) Scan(ctx context.Context, input ScanInput) (*ScanOutput, error) {
	out := &ScanOutput{Corrupt: []string{}}

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		hash := strings.TrimPrefix(key, keyPrefix)
		out.Checked++

		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redisclient.Nil {
				// expired between scan and read
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read ocr entry").
				WithMeta("key", key)
		}

		var entry Entry
		if err := json.Unmarshal([]byte(data), &entry); err == nil && entry.ImageHash == hash {
			continue
		}

		out.Corrupt = append(out.Corrupt, hash)
		if !input.Fix {
			continue
		}
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete corrupt ocr entry").
				WithMeta("key", key)
		}
		out.Removed++
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan ocr cache")
	}

	return out, nil
}

func buildKey(hash string) string {
	return keyPrefix + hash
}
