package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort     string
	JWTKey      []byte
	JWTIssuer   string
	JWTAudience string
	JWTExp      time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SeedAdminUsername string
	SeedAdminEmail    string
	SeedAdminPassword string

	AuthRateLimit       int
	AuthRateLimitWindow time.Duration
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:     getEnv("API_PORT", "8080"),
		JWTKey:      []byte(getEnv("JWT_KEY", "")),
		JWTIssuer:   getEnv("JWT_ISSUER", "calendo"),
		JWTAudience: getEnv("JWT_AUDIENCE", "calendo-clients"),
		JWTExp:      time.Duration(getEnvAsInt("JWT_EXPIRY_MINUTES", 60)) * time.Minute,

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "calendo_db"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		SeedAdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin"),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@demo.com"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "Admin123!"),

		AuthRateLimit:       getEnvAsInt("AUTH_RATE_LIMIT", 10),
		AuthRateLimitWindow: time.Duration(getEnvAsInt("AUTH_RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
