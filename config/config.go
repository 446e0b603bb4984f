package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          int    `env:"PORT" envDefault:"8080"`
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DB" envDefault:"opticare"`
	AppInstanceID string `env:"APP_INSTANCE_ID" envDefault:"visual-care-pro-v1"`
	RedisAddr     string `env:"REDIS_ADDR"`
	SessionToken  string `env:"SESSION_TOKEN"`
	SessionSecret string `env:"SESSION_SECRET"`
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
