package database

import (
	"atomatlas/internal/domain"

	"gorm.io/gorm/clause"
)

// HasPerformanceHistory is the freshness predicate for the history fetcher:
// any existing record for the reactor suppresses a re-fetch, even when the
// stored history is incomplete.
func HasPerformanceHistory(reactorID uint64) (bool, error) {
	var count int64
	err := DB.Model(&domain.PerformanceRecord{}).
		Where("reactor_id = ?", reactorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertPerformanceRecords writes one row per (reactor, year), overwriting the
// metric columns of rows that already exist.
func UpsertPerformanceRecords(records []domain.PerformanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	return DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "reactor_id"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"electricity_supplied",
			"reference_unit_power",
			"annual_time_online",
			"operation_factor",
			"annual_load_factor",
		}),
	}).Create(&records).Error
}

func GetReactorHistory(reactorID uint64) ([]domain.PerformanceRecord, error) {
	if _, err := GetReactorByID(reactorID); err != nil {
		return nil, err
	}

	var records []domain.PerformanceRecord
	err := DB.Where("reactor_id = ?", reactorID).
		Order("year").
		Find(&records).Error
	return records, err
}
