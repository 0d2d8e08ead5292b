package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"linktrack/internal/config"
	"linktrack/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	LinkKeyPrefix   = "al:"
	LinkCacheTTL    = 1 * time.Hour
	PVKeyPrefix     = "al:pv:"
	UVKeyPrefix     = "al:uv:"
	SourceKeyPrefix = "al:source:"
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// CacheLink caches the full link record as JSON. The record, not just the
// destination, so availability can be re-checked on every hit.
func (r *RedisRepository) CacheLink(ctx context.Context, link *model.AffiliateLink, ttl time.Duration) error {
	bytes, err := json.Marshal(link)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.linkKey(link.Token), bytes, ttl).Err()
}

// GetCachedLink retrieves a cached link record
func (r *RedisRepository) GetCachedLink(ctx context.Context, token string) (*model.AffiliateLink, error) {
	bytes, err := r.client.Get(ctx, r.linkKey(token)).Bytes()
	if err != nil {
		return nil, err
	}

	var link model.AffiliateLink
	if err := json.Unmarshal(bytes, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// InvalidateLink drops the cache entry for a token
func (r *RedisRepository) InvalidateLink(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.linkKey(token)).Err()
}

// IncrementPV increments the realtime page view count for a link
func (r *RedisRepository) IncrementPV(ctx context.Context, token string) (int64, error) {
	return r.client.Incr(ctx, r.pvKey(token)).Result()
}

// GetPV gets the realtime page view count for a link
func (r *RedisRepository) GetPV(ctx context.Context, token string) (int64, error) {
	return r.client.Get(ctx, r.pvKey(token)).Int64()
}

// AddUV adds a visitor to the link's unique visitor set
func (r *RedisRepository) AddUV(ctx context.Context, token, visitorID string) (bool, error) {
	added, err := r.client.SAdd(ctx, r.uvKey(token), visitorID).Result()
	if err != nil {
		return false, err
	}
	return added > 0, nil
}

// GetUV gets the unique visitor count for a link
func (r *RedisRepository) GetUV(ctx context.Context, token string) (int64, error) {
	return r.client.SCard(ctx, r.uvKey(token)).Result()
}

// AddSource bumps the referrer source counter for a link
func (r *RedisRepository) AddSource(ctx context.Context, token, source string) error {
	return r.client.HIncrBy(ctx, r.sourceKey(token), source, 1).Err()
}

// GetSources gets the referrer source counters for a link
func (r *RedisRepository) GetSources(ctx context.Context, token string) (map[string]int64, error) {
	raw, err := r.client.HGetAll(ctx, r.sourceKey(token)).Result()
	if err != nil {
		return nil, err
	}

	sources := make(map[string]int64, len(raw))
	for source, value := range raw {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		sources[source] = count
	}

	return sources, nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Helper functions to build Redis keys

func (r *RedisRepository) linkKey(token string) string {
	return LinkKeyPrefix + token
}

func (r *RedisRepository) pvKey(token string) string {
	return PVKeyPrefix + token
}

func (r *RedisRepository) uvKey(token string) string {
	return UVKeyPrefix + token
}

func (r *RedisRepository) sourceKey(token string) string {
	return SourceKeyPrefix + token
}
