package dto

import "time"

const (
	LifecycleStatusDecommissioned = "Decommissioned"
	LifecycleStatusProjected      = "Operating (60-year projection)"
)

// LifecycleEntry is one bar of the lifecycle timeline: from first grid
// connection to either the actual shutdown or a projected end of life.
type LifecycleEntry struct {
	ID      uint64    `json:"id"`
	Name    string    `json:"name"`
	Country *string   `json:"country,omitempty"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Status  string    `json:"status"`
}
