package service

import (
	"context"
	"net/url"
	"strings"

	"linktrack/internal/model"

	"github.com/rs/zerolog/log"
)

// AnalyticsService handles the read side of attribution stats and the
// referrer source aggregation fed by the MQ consumer
type AnalyticsService struct {
	redisRepo RedisRepositoryInterface
}

// NewAnalyticsService creates a new Analytics Service
func NewAnalyticsService(redisRepo RedisRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{
		redisRepo: redisRepo,
	}
}

// RecordSource bumps the referrer source counter for a link
func (as *AnalyticsService) RecordSource(ctx context.Context, token, referer string) error {
	source := as.extractSource(referer)
	if source == "" {
		return nil
	}

	if err := as.redisRepo.AddSource(ctx, token, source); err != nil {
		log.Error().Err(err).Str("token", token).Str("source", source).Msg("Failed to add source")
		return err
	}
	return nil
}

// GetRealtimeStats returns the realtime PV and UV counters for a link
func (as *AnalyticsService) GetRealtimeStats(ctx context.Context, token string) (*model.RealtimeStats, error) {
	pv, err := as.redisRepo.GetPV(ctx, token)
	if err != nil {
		log.Debug().Err(err).Str("token", token).Msg("Failed to get realtime PV")
		pv = 0
	}

	uv, err := as.redisRepo.GetUV(ctx, token)
	if err != nil {
		log.Debug().Err(err).Str("token", token).Msg("Failed to get realtime UV")
		uv = 0
	}

	return &model.RealtimeStats{PV: pv, UV: uv}, nil
}

// GetAnalytics combines the link's durable counters with the realtime
// mirrors and top referrer sources
func (as *AnalyticsService) GetAnalytics(ctx context.Context, link *model.AffiliateLink) (*model.StatsResponse, error) {
	stats, err := as.GetRealtimeStats(ctx, link.Token)
	if err != nil {
		return nil, err
	}

	sources, err := as.redisRepo.GetSources(ctx, link.Token)
	if err != nil {
		log.Error().Err(err).Str("token", link.Token).Msg("Failed to get sources")
		sources = make(map[string]int64)
	}

	return &model.StatsResponse{
		Token:            link.Token,
		ClickCount:       link.ClickCount,
		UniqueClickCount: link.UniqueClickCount,
		PV:               stats.PV,
		UV:               stats.UV,
		TopSources:       as.getTopSources(sources, 10),
	}, nil
}

// extractSource extracts the source from referer URL
func (as *AnalyticsService) extractSource(referer string) string {
	if referer == "" {
		return "direct"
	}

	u, err := url.Parse(referer)
	if err != nil {
		return "unknown"
	}

	host := u.Host
	if strings.HasPrefix(host, "www.") {
		host = host[4:]
	}

	// Known sources for creator traffic
	switch {
	case strings.Contains(host, "instagram"):
		return "instagram"
	case strings.Contains(host, "tiktok"):
		return "tiktok"
	case strings.Contains(host, "youtube") || strings.Contains(host, "youtu.be"):
		return "youtube"
	case strings.Contains(host, "facebook") || strings.Contains(host, "fb.com"):
		return "facebook"
	case strings.Contains(host, "pinterest"):
		return "pinterest"
	case strings.Contains(host, "twitter") || host == "x.com" || strings.HasSuffix(host, ".x.com"):
		return "x"
	case strings.Contains(host, "google"):
		return "google"
	default:
		// Return domain name for other sources
		parts := strings.Split(host, ".")
		if len(parts) >= 2 {
			return parts[len(parts)-2]
		}
		return host
	}
}

// getTopSources returns the top N sources
func (as *AnalyticsService) getTopSources(sources map[string]int64, limit int) []model.SourceStat {
	if len(sources) == 0 {
		return []model.SourceStat{}
	}

	stats := make([]model.SourceStat, 0, len(sources))
	for source, count := range sources {
		stats = append(stats, model.SourceStat{Source: source, Count: count})
	}

	// Simple sort by count descending
	for i := 0; i < len(stats); i++ {
		for j := i + 1; j < len(stats); j++ {
			if stats[j].Count > stats[i].Count {
				stats[i], stats[j] = stats[j], stats[i]
			}
		}
	}

	if len(stats) > limit {
		stats = stats[:limit]
	}

	return stats
}
