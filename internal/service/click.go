package service

import (
	"context"
	"fmt"
	"time"

	"linktrack/internal/model"
	"linktrack/pkg/metrics"
	"linktrack/pkg/util"

	"github.com/rs/zerolog/log"
)

// refererMaxLen bounds the persisted referer
const refererMaxLen = 512

// ClickService is the click recorder: it classifies each resolution as
// unique/revisit and durably persists the click plus the link's
// denormalized counters.
type ClickService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
}

// NewClickService creates a new Click Service
func NewClickService(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface) *ClickService {
	return &ClickService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
	}
}

// Record persists one click for a resolved link.
//
// isRevisit is visit-level: whether the browser already carried a visitor
// cookie. isUnique is per-link: whether a prior click exists for this
// (link, visitor) pair. A brand-new visitor is trivially unique without a
// lookup. The existence check and the insert are deliberately not wrapped
// in one transaction: under a same-visitor race at most one extra click is
// classified unique, while the counter increments are atomic on the store
// side and never lose updates.
func (s *ClickService) Record(ctx context.Context, link *model.AffiliateLink, visit *model.Visit) (*model.ClickResult, error) {
	now := time.Now().UTC()

	isRevisit := visit.IsReturning
	isUnique := true
	if visit.IsReturning {
		seen, err := s.mysqlRepo.HasClick(ctx, link.ID, visit.VisitorID)
		if err != nil {
			return nil, fmt.Errorf("uniqueness check failed: %w", err)
		}
		isUnique = !seen
	}

	visitor := &model.Visitor{
		ID:          visit.VisitorID,
		FirstSeenAt: now,
		LastSeenAt:  now,
		LastLinkID:  &link.ID,
		LastClickAt: &now,
	}
	if err := s.mysqlRepo.UpsertVisitor(ctx, visitor); err != nil {
		return nil, fmt.Errorf("visitor upsert failed: %w", err)
	}

	click := &model.Click{
		LinkID:        link.ID,
		VisitorID:     visit.VisitorID,
		Referer:       util.Truncate(visit.Referer, refererMaxLen),
		UserAgentHash: visit.UserAgentHash,
		IPHash:        visit.IPHash,
		IsUnique:      isUnique,
		IsRevisit:     isRevisit,
		ClickedAt:     now,
	}
	if err := s.mysqlRepo.CreateClick(ctx, click); err != nil {
		return nil, fmt.Errorf("click insert failed: %w", err)
	}

	if err := s.mysqlRepo.IncrementClickCounts(ctx, link.ID, isUnique); err != nil {
		return nil, fmt.Errorf("counter increment failed: %w", err)
	}

	metrics.RecordClick(isUnique)

	// Realtime mirrors in Redis, best effort
	if _, err := s.redisRepo.IncrementPV(ctx, link.Token); err != nil {
		log.Warn().Err(err).Str("token", link.Token).Msg("Failed to increment realtime PV")
	}
	if _, err := s.redisRepo.AddUV(ctx, link.Token, visit.VisitorID); err != nil {
		log.Warn().Err(err).Str("token", link.Token).Msg("Failed to add realtime UV")
	}

	return &model.ClickResult{IsUnique: isUnique, IsRevisit: isRevisit}, nil
}
