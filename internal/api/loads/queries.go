package loadsapi

import (
	"gorm.io/gorm"

	"haulsaver-app/internal/domain/loads"
)

func findOwnedLoad(db *gorm.DB, loadID, userID string) (*loads.Load, error) {
	var load loads.Load
	if err := db.Where("id = ? AND user_id = ?", loadID, userID).First(&load).Error; err != nil {
		return nil, err
	}
	return &load, nil
}

// searchPublished filters published loads by optional origin/destination
// substrings, newest first.
func searchPublished(db *gorm.DB, origin, destination string, limit int) ([]loads.Load, error) {
	q := db.Where("status = ?", loads.StatusPublished)
	if origin != "" {
		q = q.Where("pickup_location ILIKE ?", "%"+origin+"%")
	}
	if destination != "" {
		q = q.Where("delivery_location ILIKE ?", "%"+destination+"%")
	}

	var results []loads.Load
	err := q.Order("created_at DESC").Limit(clampLimit(limit)).Find(&results).Error
	return results, err
}

// clampLimit keeps the page size caller-controlled but bounded.
func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return limit
}
