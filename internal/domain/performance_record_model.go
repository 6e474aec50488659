package domain

import "time"

// PerformanceRecord holds one year of operational statistics for a reactor.
// (reactor, year) is unique; the history fetcher upserts on that pair.
type PerformanceRecord struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ReactorID uint64 `gorm:"not null;uniqueIndex:idx_performance_reactor_year,priority:1" json:"reactor_id"`
	Year      int    `gorm:"not null;uniqueIndex:idx_performance_reactor_year,priority:2" json:"year"`

	ElectricitySupplied *float64 `json:"electricity_supplied"`
	ReferenceUnitPower  *float64 `json:"reference_unit_power"`
	AnnualTimeOnline    *float64 `json:"annual_time_online"`
	OperationFactor     *float64 `json:"operation_factor"`
	AnnualLoadFactor    *float64 `json:"annual_load_factor"`

	Reactor Reactor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
