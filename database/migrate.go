package database

import (
	"github.com/sumpierrezf/star-wars-api-with-token/models"

	"gorm.io/gorm"
)

// Migrate brings the schema in line with the models. Favorites carry one
// unique index per kind so a racing duplicate insert fails instead of
// storing a second row.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Character{},
		&models.Planet{},
		&models.Vehicle{},
		&models.Favorite{},
	)
}
