package services

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sumpierrezf/star-wars-api-with-token/database"
)

// SyncCatalog loads the seed file (or the built-in catalog when seedFile is
// empty) and inserts the entries that are missing.
func SyncCatalog(db *gorm.DB, seedFile string, logger *zap.Logger) (database.SeedResult, error) {
	seed, err := database.LoadCatalogSeed(seedFile)
	if err != nil {
		return database.SeedResult{}, err
	}
	res, err := database.SeedCatalog(db, seed)
	if err != nil {
		return res, err
	}
	logger.Info("catalog synced",
		zap.String("seed_file", seedFile),
		zap.Int("characters", res.Characters),
		zap.Int("planets", res.Planets),
		zap.Int("vehicles", res.Vehicles),
	)
	return res, nil
}

// StartCatalogSyncCron schedules SyncCatalog with a standard five-field cron
// spec (descriptors such as "@every 6h" work too). The caller stops the
// returned scheduler on shutdown.
func StartCatalogSyncCron(db *gorm.DB, spec, seedFile string, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if _, err := SyncCatalog(db, seedFile, logger); err != nil {
			logger.Error("catalog sync failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("catalog sync cron started", zap.String("schedule", spec))
	return c, nil
}
