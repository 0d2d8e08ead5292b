package repository

import (
	"context"
	"time"

	"linktrack/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetDB() interface{}
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
	GetTotalLinksCount(ctx context.Context) (int64, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	CacheLink(ctx context.Context, link *model.AffiliateLink, ttl time.Duration) error
	GetCachedLink(ctx context.Context, token string) (*model.AffiliateLink, error)
	InvalidateLink(ctx context.Context, token string) error
	IncrementPV(ctx context.Context, token string) (int64, error)
	GetPV(ctx context.Context, token string) (int64, error)
	AddUV(ctx context.Context, token, visitorID string) (bool, error)
	GetUV(ctx context.Context, token string) (int64, error)
	AddSource(ctx context.Context, token, source string) error
	GetSources(ctx context.Context, token string) (map[string]int64, error)
	Close() error
}
