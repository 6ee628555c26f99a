package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	InputPath  string
	OutputDir  string
	RulesPath  string
	WriteXLSX  bool
	WriteDB    bool
	Workers    int
	MaxRetries int

	// AssignSequentialIDs enables the post-processing stage that sorts the
	// accepted records by numeric id and numbers them 1..n.
	AssignSequentialIDs bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "etl"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "etl123"),
		PostgresDB:       getEnv("POSTGRES_DB", "airbnb"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		InputPath:  getEnv("INPUT_PATH", "./data/listings.csv"),
		OutputDir:  getEnv("OUTPUT_DIR", "./output"),
		RulesPath:  getEnv("RULES_PATH", ""),
		WriteXLSX:  getEnvBool("WRITE_XLSX", false),
		WriteDB:    getEnvBool("WRITE_DB", true),
		Workers:    getEnvInt("PIPELINE_WORKERS", 1),
		MaxRetries: getEnvInt("MAX_RETRIES", 3),

		AssignSequentialIDs: getEnvBool("ASSIGN_SEQUENTIAL_IDS", false),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
