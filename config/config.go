package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

const defaultDatabase = "happyThoughts"

type Config struct {
	MongoURI        string        `envconfig:"MONGO_URL"        default:"mongodb://localhost/happyThoughts"`
	MongoDB         string        `envconfig:"MONGO_DB"`
	Port            string        `envconfig:"PORT"             default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`
	StoreTimeout    time.Duration `envconfig:"STORE_TIMEOUT"    default:"5s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	CORSOrigins     string        `envconfig:"CORS_ORIGINS"     default:"*"`

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool `ignored:"true"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	cfg.EnvFileLoaded = godotenv.Load() == nil

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if cfg.StoreTimeout <= 0 {
		return Config{}, fmt.Errorf("STORE_TIMEOUT must be positive, got %s", cfg.StoreTimeout)
	}
	if cfg.MongoDB == "" {
		db, err := databaseFromURI(cfg.MongoURI)
		if err != nil {
			return Config{}, err
		}
		cfg.MongoDB = db
	}
	return cfg, nil
}

func databaseFromURI(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid MONGO_URL: %w", err)
	}
	if cs.Database == "" {
		return defaultDatabase, nil
	}
	return cs.Database, nil
}
