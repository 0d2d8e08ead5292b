package model

import (
	"time"

	"gorm.io/gorm"
)

// AffiliateLink represents a registered short-token destination
type AffiliateLink struct {
	ID                    int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Token                 string         `json:"token" gorm:"type:varchar(50);uniqueIndex;not null"`
	DestinationURL        string         `json:"destination_url" gorm:"type:varchar(2048);not null"`
	IsActive              bool           `json:"is_active" gorm:"not null;default:true"`
	ExpiresAt             *time.Time     `json:"expires_at,omitempty" gorm:"index"`
	AttributionWindowDays int            `json:"attribution_window_days" gorm:"not null;default:30"`
	ClickCount            int64          `json:"click_count" gorm:"not null;default:0"`
	UniqueClickCount      int64          `json:"unique_click_count" gorm:"not null;default:0"`
	CreatedAt             time.Time      `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt             gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for AffiliateLink
func (AffiliateLink) TableName() string {
	return "affiliate_links"
}

// Available checks if the link is active and not expired
func (l *AffiliateLink) Available() bool {
	if !l.IsActive {
		return false
	}
	if l.ExpiresAt != nil && time.Now().After(*l.ExpiresAt) {
		return false
	}
	return true
}

// WindowDays returns the link's attribution window, falling back to the
// given default when the link does not carry its own.
func (l *AffiliateLink) WindowDays(defaultDays int) int {
	if l.AttributionWindowDays > 0 {
		return l.AttributionWindowDays
	}
	return defaultDays
}

// CreateLinkRequest represents the request to register an affiliate link
type CreateLinkRequest struct {
	URL                   string `json:"url" binding:"required,url"`
	Token                 string `json:"token"`
	ExpiresAt             string `json:"expires_at"`
	AttributionWindowDays int    `json:"attribution_window_days"`
}

// CreateLinkResponse represents the response of link registration
type CreateLinkResponse struct {
	Token                 string    `json:"token"`
	ShortLink             string    `json:"short_link"`
	DestinationURL        string    `json:"destination_url"`
	AttributionWindowDays int       `json:"attribution_window_days"`
	ExpiresAt             time.Time `json:"expires_at,omitempty"`
}

// StatsResponse represents the attribution statistics for a link
type StatsResponse struct {
	Token            string       `json:"token"`
	ClickCount       int64        `json:"click_count"`
	UniqueClickCount int64        `json:"unique_click_count"`
	PV               int64        `json:"pv"`
	UV               int64        `json:"uv"`
	TopSources       []SourceStat `json:"top_sources"`
}

// SourceStat represents referrer source statistics
type SourceStat struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

// RealtimeStats represents the realtime counters kept in Redis
type RealtimeStats struct {
	PV int64 `json:"pv"`
	UV int64 `json:"uv"`
}
