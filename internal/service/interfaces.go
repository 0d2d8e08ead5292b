package service

import (
	"context"
	"time"

	"linktrack/internal/model"

	"github.com/redis/go-redis/v9"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	CreateLink(ctx context.Context, link *model.AffiliateLink) error
	GetLinkByToken(ctx context.Context, token string) (*model.AffiliateLink, error)
	TokenExists(ctx context.Context, token string) (bool, error)
	ListTokens(ctx context.Context) ([]string, error)
	DeactivateLink(ctx context.Context, token string) (int64, error)
	HasClick(ctx context.Context, linkID int64, visitorID string) (bool, error)
	UpsertVisitor(ctx context.Context, visitor *model.Visitor) error
	CreateClick(ctx context.Context, click *model.Click) error
	IncrementClickCounts(ctx context.Context, linkID int64, unique bool) error
	GetClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	GetClient() *redis.Client
	CacheLink(ctx context.Context, link *model.AffiliateLink, ttl time.Duration) error
	GetCachedLink(ctx context.Context, token string) (*model.AffiliateLink, error)
	InvalidateLink(ctx context.Context, token string) error
	IncrementPV(ctx context.Context, token string) (int64, error)
	GetPV(ctx context.Context, token string) (int64, error)
	AddUV(ctx context.Context, token, visitorID string) (bool, error)
	GetUV(ctx context.Context, token string) (int64, error)
	AddSource(ctx context.Context, token, source string) error
	GetSources(ctx context.Context, token string) (map[string]int64, error)
}

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
	GetCapacity() int64
	IsAvailable(ctx context.Context) bool
	Reset(ctx context.Context) error
}

// LinkServiceInterface defines the interface for link registry operations
type LinkServiceInterface interface {
	Create(ctx context.Context, req *model.CreateLinkRequest) (*model.CreateLinkResponse, error)
	Resolve(ctx context.Context, token string) (*model.AffiliateLink, error)
	GetByToken(ctx context.Context, token string) (*model.AffiliateLink, error)
	Deactivate(ctx context.Context, token string) error
	RecentClicks(ctx context.Context, token string, limit int) ([]model.Click, error)
}

// ClickServiceInterface defines the interface for the click recorder
type ClickServiceInterface interface {
	Record(ctx context.Context, link *model.AffiliateLink, visit *model.Visit) (*model.ClickResult, error)
}

// AnalyticsServiceInterface defines the interface for analytics operations
type AnalyticsServiceInterface interface {
	RecordSource(ctx context.Context, token, referer string) error
	GetRealtimeStats(ctx context.Context, token string) (*model.RealtimeStats, error)
	GetAnalytics(ctx context.Context, link *model.AffiliateLink) (*model.StatsResponse, error)
}
