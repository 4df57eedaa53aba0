package cmd

import (
	"fmt"

	"github.com/sumpierrezf/star-wars-api-with-token/config"
	"github.com/sumpierrezf/star-wars-api-with-token/database"
	"github.com/sumpierrezf/star-wars-api-with-token/services"
	"github.com/sumpierrezf/star-wars-api-with-token/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

func newSeedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load characters, planets and vehicles into the catalog",
		Long: `Inserts every catalog entry that is not stored yet, matched by name.
Without --file (or CATALOG_SEED_FILE) the built-in catalog is loaded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(envFile, nil)
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.CatalogSeedFile
			}

			log, err := utils.InitLogger(cfg.LogLevel, "")
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := database.Connect(cfg.DatabaseURL, logger.Warn)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			res, err := services.SyncCatalog(db, file, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d characters, %d planets, %d vehicles\n",
				res.Characters, res.Planets, res.Vehicles)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON seed file with characters, planets and vehicles")
	return cmd
}
