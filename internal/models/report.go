package models

import "time"

// ItemKPI aggregates inspection outcomes for one item code.
type ItemKPI struct {
	ItemCode    string  `json:"item_code"`
	Inspections int     `json:"inspections"`
	OOS         int     `json:"oos"`
	YieldPct    float64 `json:"yield_pct"`
}

// LineKPI aggregates inspection outcomes for one production line.
type LineKPI struct {
	Line        string `json:"line"`
	Inspections int    `json:"inspections"`
	OOS         int    `json:"oos"`
}

// KPISummary is the report payload for the reports screen.
type KPISummary struct {
	GeneratedAt      time.Time `json:"generated_at"`
	TotalInspections int       `json:"total_inspections"`
	Completed        int       `json:"completed"`
	OOS              int       `json:"oos"`
	FirstPassYield   float64   `json:"first_pass_yield_pct"`
	ActiveHolds      int       `json:"active_holds"`
	ReleasedHolds    int       `json:"released_holds"`
	MissedQueueItems int       `json:"missed_queue_items"`
	ActiveLocks      int       `json:"active_locks"`
	ByItem           []ItemKPI `json:"by_item"`
	ByLine           []LineKPI `json:"by_line"`
}
