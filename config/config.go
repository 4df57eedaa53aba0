package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	DatabaseURL string
	AutoMigrate bool
	GinMode     string

	LogLevel string
	LogDir   string

	CORSAllowedOrigins []string

	// Redis backs the write rate limiter; empty RedisAddr disables it.
	RedisAddr          string
	RedisPassword      string
	RateLimitPerMinute int

	// Catalog loader settings
	CatalogSeedFile string
	CatalogSyncCron string
	SeedOnStart     bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "logs")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 0)
	v.SetDefault("CATALOG_SEED_FILE", "")
	v.SetDefault("CATALOG_SYNC_CRON", "")
	v.SetDefault("SEED_ON_START", false)
}

// LoadConfig reads envFile (when present) into the environment, then
// resolves every setting from the environment with defaults. Flags that
// were set explicitly on the command line win over the environment.
func LoadConfig(envFile string, flags *pflag.FlagSet) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("port"); f != nil {
			if err := v.BindPFlag("PORT", f); err != nil {
				return nil, err
			}
		}
	}

	return &Config{
		Port:               v.GetString("PORT"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		AutoMigrate:        v.GetBool("AUTO_MIGRATE"),
		GinMode:            v.GetString("GIN_MODE"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogDir:             v.GetString("LOG_DIR"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		CatalogSeedFile:    v.GetString("CATALOG_SEED_FILE"),
		CatalogSyncCron:    v.GetString("CATALOG_SYNC_CRON"),
		SeedOnStart:        v.GetBool("SEED_ON_START"),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
