package config

import "os"

type Config struct {
	DatabaseURL  string
	RedisURL     string
	KafkaBrokers string
	OTLPEndpoint string
	Port         string
}

func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
		Port:         port,
	}
}
