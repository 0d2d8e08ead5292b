package mq

import (
	"time"
)

// ClickMessage represents a recorded click published for downstream
// conversion matching and source aggregation. IP and user-agent are
// carried only as hashes.
type ClickMessage struct {
	Token         string    `json:"token"`
	LinkID        int64     `json:"link_id"`
	VisitorID     string    `json:"visitor_id"`
	Referer       string    `json:"referer"`
	IPHash        string    `json:"ip_hash"`
	UserAgentHash string    `json:"user_agent_hash"`
	IsUnique      bool      `json:"is_unique"`
	IsRevisit     bool      `json:"is_revisit"`
	ClickedAt     time.Time `json:"clicked_at"`
}
