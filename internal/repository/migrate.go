package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the
// repositories use. Called by cmd/seed and the tests; production deploys
// manage the schema out of band.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&itemModel{},
		&requestModel{},
		&bookingModel{},
		&commentModel{},
	)
}
