package models

import "time"

// KindCount is the number of persisted trades of one kind.
type KindCount struct {
	Kind  string `json:"kind" example:"Fra"`
	Count int64  `json:"count" example:"1200"`
}

// LoadStats summarizes the persisted trade store, broken down by kind.
//
// This model is returned by the API when querying /api/v1/trades/stats.
//
// swagger:model LoadStats
type LoadStats struct {
	Total      int64       `json:"total" example:"4800"`
	ByKind     []KindCount `json:"by_kind"`
	LastLoadAt time.Time   `json:"last_load_at,omitempty"`
}
