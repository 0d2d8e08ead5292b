package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"linktrack/internal/model"
	"linktrack/internal/repository"
	"linktrack/internal/token"
	"linktrack/pkg/metrics"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrInvalidToken is returned when a token fails the syntax check
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidDestination is returned when the destination URL is invalid
	ErrInvalidDestination = errors.New("invalid destination URL")
	// ErrTokenTaken is returned when a requested token is already registered
	ErrTokenTaken = errors.New("token already registered")
	// ErrLinkUnavailable is the uniform outcome for missing, inactive and
	// expired links. Callers must not learn which of the three it was.
	ErrLinkUnavailable = errors.New("link unavailable")
	// ErrMintExhausted is returned when token minting keeps colliding
	ErrMintExhausted = errors.New("failed to mint a free token")
)

// mintAttempts bounds the collision loop when minting tokens
const mintAttempts = 10

// LinkService handles the link registry: registration, resolution and
// lifecycle
type LinkService struct {
	mysqlRepo         MySQLRepositoryInterface
	redisRepo         RedisRepositoryInterface
	bloomSvc          BloomServiceInterface
	domain            string
	defaultWindowDays int
}

// NewLinkService creates a new Link Service
func NewLinkService(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	bloomSvc BloomServiceInterface,
	domain string,
	defaultWindowDays int,
) *LinkService {
	return &LinkService{
		mysqlRepo:         mysqlRepo,
		redisRepo:         redisRepo,
		bloomSvc:          bloomSvc,
		domain:            domain,
		defaultWindowDays: defaultWindowDays,
	}
}

// Create registers a new affiliate link. The token is either caller-chosen
// (validated, uniqueness-checked) or minted at random.
func (s *LinkService) Create(ctx context.Context, req *model.CreateLinkRequest) (*model.CreateLinkResponse, error) {
	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidDestination
	}

	// Parse expire time if provided
	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("invalid expires_at format: %w", err)
		}
		expiresAt = &t
	}

	windowDays := req.AttributionWindowDays
	if windowDays <= 0 {
		windowDays = s.defaultWindowDays
	}

	tok := req.Token
	if tok != "" {
		if !token.Validate(tok) {
			return nil, ErrInvalidToken
		}
		exists, err := s.mysqlRepo.TokenExists(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("failed to check token: %w", err)
		}
		if exists {
			return nil, ErrTokenTaken
		}
	} else {
		tok, err = s.mint(ctx)
		if err != nil {
			return nil, err
		}
	}

	link := &model.AffiliateLink{
		Token:                 tok,
		DestinationURL:        req.URL,
		IsActive:              true,
		ExpiresAt:             expiresAt,
		AttributionWindowDays: windowDays,
	}

	if err := s.mysqlRepo.CreateLink(ctx, link); err != nil {
		log.Error().Err(err).Str("token", tok).Msg("Failed to save affiliate link")
		return nil, fmt.Errorf("failed to save affiliate link: %w", err)
	}

	// Register with Bloom Filter and warm the cache
	if err := s.bloomSvc.Add(ctx, tok); err != nil {
		log.Warn().Err(err).Str("token", tok).Msg("Failed to add token to Bloom Filter")
	}
	if err := s.redisRepo.CacheLink(ctx, link, repository.LinkCacheTTL); err != nil {
		log.Warn().Err(err).Str("token", tok).Msg("Failed to cache affiliate link")
	}

	return s.buildResponse(link), nil
}

// Resolve looks up a token for redirection. Missing, inactive and expired
// links all collapse into ErrLinkUnavailable; any other error is a store
// failure the caller should log at error severity.
func (s *LinkService) Resolve(ctx context.Context, tok string) (*model.AffiliateLink, error) {
	// Bloom Filter first: a definite miss means the token was never
	// registered, so scanner garbage never reaches MySQL.
	if exists, err := s.bloomSvc.Exists(ctx, tok); err == nil && !exists {
		return nil, ErrLinkUnavailable
	}

	// Try cache. Availability is re-checked on every hit so a link that
	// expires or is deactivated while cached still falls back.
	if link, err := s.redisRepo.GetCachedLink(ctx, tok); err == nil {
		metrics.RecordCacheHit()
		if !link.Available() {
			return nil, ErrLinkUnavailable
		}
		return link, nil
	}
	metrics.RecordCacheMiss()

	// Try MySQL
	link, err := s.mysqlRepo.GetLinkByToken(ctx, tok)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkUnavailable
		}
		return nil, fmt.Errorf("link lookup failed: %w", err)
	}

	if !link.Available() {
		return nil, ErrLinkUnavailable
	}

	if err := s.redisRepo.CacheLink(ctx, link, repository.LinkCacheTTL); err != nil {
		log.Warn().Err(err).Str("token", tok).Msg("Failed to cache affiliate link")
	}

	return link, nil
}

// GetByToken retrieves a link regardless of availability, for management
// and stats surfaces
func (s *LinkService) GetByToken(ctx context.Context, tok string) (*model.AffiliateLink, error) {
	link, err := s.mysqlRepo.GetLinkByToken(ctx, tok)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkUnavailable
		}
		return nil, fmt.Errorf("link lookup failed: %w", err)
	}
	return link, nil
}

// Deactivate flips a link inactive and drops its cache entry
func (s *LinkService) Deactivate(ctx context.Context, tok string) error {
	rows, err := s.mysqlRepo.DeactivateLink(ctx, tok)
	if err != nil {
		return fmt.Errorf("failed to deactivate link: %w", err)
	}
	if rows == 0 {
		return ErrLinkUnavailable
	}

	if err := s.redisRepo.InvalidateLink(ctx, tok); err != nil {
		log.Warn().Err(err).Str("token", tok).Msg("Failed to invalidate cached link")
	}

	return nil
}

// RecentClicks returns recent click rows for a link
func (s *LinkService) RecentClicks(ctx context.Context, tok string, limit int) ([]model.Click, error) {
	link, err := s.GetByToken(ctx, tok)
	if err != nil {
		return nil, err
	}
	return s.mysqlRepo.GetClicks(ctx, link.ID, limit)
}

// WarmBloom repopulates the Bloom Filter from the registry, called at
// startup so filter negatives can be trusted on the redirect path.
func (s *LinkService) WarmBloom(ctx context.Context) error {
	tokens, err := s.mysqlRepo.ListTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tokens: %w", err)
	}

	for _, tok := range tokens {
		if err := s.bloomSvc.Add(ctx, tok); err != nil {
			return fmt.Errorf("failed to warm Bloom Filter: %w", err)
		}
	}

	log.Info().Int("tokens", len(tokens)).Msg("Bloom Filter warmed")
	return nil
}

// mint generates a random token, retrying on the rare collision
func (s *LinkService) mint(ctx context.Context) (string, error) {
	for i := 0; i < mintAttempts; i++ {
		tok, err := token.New(token.DefaultLength)
		if err != nil {
			return "", err
		}

		// Bloom Filter first (fast check), then DB to be sure
		if exists, err := s.bloomSvc.Exists(ctx, tok); err == nil && exists {
			continue
		}
		exists, err := s.mysqlRepo.TokenExists(ctx, tok)
		if err != nil {
			return "", fmt.Errorf("failed to check token: %w", err)
		}
		if !exists {
			return tok, nil
		}
	}

	return "", ErrMintExhausted
}

// buildResponse builds a create response from a link entity
func (s *LinkService) buildResponse(link *model.AffiliateLink) *model.CreateLinkResponse {
	resp := &model.CreateLinkResponse{
		Token:                 link.Token,
		ShortLink:             fmt.Sprintf("%s/%s", s.domain, link.Token),
		DestinationURL:        link.DestinationURL,
		AttributionWindowDays: link.AttributionWindowDays,
	}

	if link.ExpiresAt != nil {
		resp.ExpiresAt = *link.ExpiresAt
	}

	return resp
}
