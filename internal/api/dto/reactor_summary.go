package dto

type ReactorSummary struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Country     *string  `json:"country,omitempty"`
	NetCapacity *float64 `json:"net_capacity,omitempty"`
}
