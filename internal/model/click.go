package model

import (
	"time"
)

// Click represents one resolution of one token by one visitor. Rows are
// append-only: never updated or deleted after insert.
type Click struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID        int64     `json:"link_id" gorm:"not null;index:idx_clicks_link_visitor,priority:1"`
	VisitorID     string    `json:"visitor_id" gorm:"type:varchar(64);not null;index:idx_clicks_link_visitor,priority:2"`
	Referer       string    `json:"referer,omitempty" gorm:"type:varchar(512)"`
	UserAgentHash string    `json:"user_agent_hash,omitempty" gorm:"type:varchar(64)"`
	IPHash        string    `json:"ip_hash,omitempty" gorm:"type:varchar(64)"`
	IsUnique      bool      `json:"is_unique" gorm:"not null"`
	IsRevisit     bool      `json:"is_revisit" gorm:"not null"`
	ClickedAt     time.Time `json:"clicked_at" gorm:"index;autoCreateTime"`
}

// TableName returns the table name for Click
func (Click) TableName() string {
	return "clicks"
}

// ClickResult reports how a recorded click was classified.
// IsUnique is scoped per (link, visitor); IsRevisit is visit-level,
// true when the browser already carried a visitor cookie.
type ClickResult struct {
	IsUnique  bool `json:"is_unique"`
	IsRevisit bool `json:"is_revisit"`
}
