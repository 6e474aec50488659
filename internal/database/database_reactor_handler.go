package database

import (
	"errors"
	"fmt"

	"atomatlas/internal/domain"

	"gorm.io/gorm"
)

const reactorInsertBatchSize = 200

var ErrReactorNotFound = errors.New("reactor not found")

// ReplaceAllReactors swaps the entire reactor catalog for the staged set in a
// single transaction. History rows go with their reactors via the cascade, so
// a completed call leaves only the new catalog visible and a failed call
// leaves the old one untouched.
func ReplaceAllReactors(reactors []domain.Reactor) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&domain.PerformanceRecord{}).Error; err != nil {
			return fmt.Errorf("clear performance records: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&domain.Reactor{}).Error; err != nil {
			return fmt.Errorf("clear reactors: %w", err)
		}

		if len(reactors) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(reactors, reactorInsertBatchSize).Error; err != nil {
			return fmt.Errorf("insert reactors: %w", err)
		}

		return nil
	})
}

func GetAllReactors() ([]domain.Reactor, error) {
	var reactors []domain.Reactor
	err := DB.Order("name").Find(&reactors).Error
	return reactors, err
}

func GetReactorByID(id uint64) (*domain.Reactor, error) {
	var reactor domain.Reactor
	err := DB.First(&reactor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReactorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reactor, nil
}

func GetReactorCount() (int64, error) {
	var count int64
	err := DB.Model(&domain.Reactor{}).Count(&count).Error
	return count, err
}

// GetReactorsWithoutCoordinates returns the backfill work list: every reactor
// whose latitude is still null. Longitude is never set without latitude, so
// one predicate is enough.
func GetReactorsWithoutCoordinates() ([]domain.Reactor, error) {
	var reactors []domain.Reactor
	err := DB.Where("latitude IS NULL").Order("name").Find(&reactors).Error
	return reactors, err
}

func UpdateReactorCoordinates(reactorID uint64, latitude, longitude float64) error {
	return DB.Model(&domain.Reactor{}).
		Where("id = ?", reactorID).
		Updates(map[string]any{
			"latitude":  latitude,
			"longitude": longitude,
		}).Error
}

func UpdateReactorTypeCategory(reactorID uint64, category string) error {
	return DB.Model(&domain.Reactor{}).
		Where("id = ?", reactorID).
		Update("type_category", category).Error
}
