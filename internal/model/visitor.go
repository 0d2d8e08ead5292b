package model

import (
	"time"
)

// Visitor represents a pseudonymous browser identity across visits.
// The ID doubles as the visitor cookie value and is minted from a
// cryptographically strong random source, never a counter.
type Visitor struct {
	ID          string     `json:"id" gorm:"type:varchar(64);primaryKey"`
	FirstSeenAt time.Time  `json:"first_seen_at" gorm:"not null"`
	LastSeenAt  time.Time  `json:"last_seen_at" gorm:"not null"`
	LastLinkID  *int64     `json:"last_link_id,omitempty" gorm:"index"`
	LastClickAt *time.Time `json:"last_click_at,omitempty"`
}

// TableName returns the table name for Visitor
func (Visitor) TableName() string {
	return "visitors"
}

// Visit carries the per-request visitor context handed to the click
// recorder. IPHash and UserAgentHash are already hashed; raw values are
// never persisted.
type Visit struct {
	VisitorID     string
	IsReturning   bool
	IPHash        string
	UserAgentHash string
	Referer       string
}
