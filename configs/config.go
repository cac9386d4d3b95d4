package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	MenuFile  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
}

func LoadConfig() *Config {
	// ไม่มีไฟล์ .env ก็ใช้ env จริงของ process
	_ = godotenv.Load()

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "coffeeshop.db"),
		MenuFile:  getEnv("MENU_FILE", "menu.json"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
