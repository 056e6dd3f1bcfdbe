package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	APP_URL     string
	SERVER_URL  string
	CORS_ORIGIN string

	TRIAL_PERIOD_DAYS int
	PAYMENT_SANDBOX   bool

	// OPERATOR_EMAILS holds "email:role" pairs, comma separated. Used only to
	// bootstrap known operator accounts when the stored profile is incomplete.
	OPERATOR_EMAILS map[string]string

	CHIP_API_URL  string
	CHIP_API_KEY  string
	CHIP_BRAND_ID string

	BILLPLZ_API_URL       string
	BILLPLZ_API_KEY       string
	BILLPLZ_COLLECTION_ID string

	BACKUP_DIR string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	APP_URL = getEnv("APP_URL", "http://localhost:5173")
	SERVER_URL = getEnv("SERVER_URL", "http://localhost:8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	TRIAL_PERIOD_DAYS = getEnvInt("TRIAL_PERIOD_DAYS", 14)
	PAYMENT_SANDBOX = getEnvBool("PAYMENT_SANDBOX", true)
	OPERATOR_EMAILS = parseOperatorEmails(getEnv("OPERATOR_EMAILS", ""))

	CHIP_API_URL = getEnv("CHIP_API_URL", "https://gate.chip-in.asia/api/v1")
	CHIP_API_KEY = getEnv("CHIP_API_KEY", "")
	CHIP_BRAND_ID = getEnv("CHIP_BRAND_ID", "")

	BILLPLZ_API_URL = getEnv("BILLPLZ_API_URL", "https://www.billplz.com/api/v3")
	BILLPLZ_API_KEY = getEnv("BILLPLZ_API_KEY", "")
	BILLPLZ_COLLECTION_ID = getEnv("BILLPLZ_COLLECTION_ID", "")

	BACKUP_DIR = getEnv("BACKUP_DIR", "./backups")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

// parseOperatorEmails accepts "admin@permitakaun.my:superadmin,staf@x.my:staff".
// Malformed entries are skipped rather than aborting startup.
func parseOperatorEmails(raw string) map[string]string {
	out := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return out
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			log.Printf("OPERATOR_EMAILS: skipping malformed entry %q", pair)
			continue
		}
		out[strings.ToLower(parts[0])] = strings.ToLower(parts[1])
	}
	return out
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, exists := os.LookupEnv(key)
	if !exists || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("%s: invalid value %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v, exists := os.LookupEnv(key)
	if !exists || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("%s: invalid value %q, using %v", key, v, fallback)
		return fallback
	}
	return b
}
