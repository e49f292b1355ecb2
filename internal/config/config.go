package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DataDir    string
	Secret     string
	Production bool
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return Config{
		Port:       port,
		DataDir:    dataDir,
		Secret:     os.Getenv("TIMIN_SECRET"),
		Production: os.Getenv("APP_ENV") == "production",
	}
}
