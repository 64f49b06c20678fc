package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv 先读 .env，真实环境变量优先
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
}
