package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI      string
	DBName        string
	JWTSecret     string
	AdminEmails   []string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	EmailFrom     string
	StoreName     string
	PublicBaseURL string
	UploadDir     string
	Port          string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:      getEnvOrDefault("MONGO_URI", ""),
		DBName:        getEnvOrDefault("DB_NAME", "storefront"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
		AdminEmails:   getEmailListEnv("ADMIN_EMAILS"),
		SMTPHost:      getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getIntEnv("SMTP_PORT", 587),
		SMTPUser:      getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:      getEnvOrDefault("SMTP_PASS", ""),
		EmailFrom:     getEnvOrDefault("EMAIL_FROM", ""),
		StoreName:     getEnvOrDefault("STORE_NAME", "Solara"),
		PublicBaseURL: getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:     getEnvOrDefault("UPLOAD_DIR", "./public/uploads"),
		Port:          getEnvOrDefault("PORT", "8080"),
	}
	if len(AppEnv.AdminEmails) == 0 {
		log.Println("[CONFIG] [WARN] no admin emails configured; admin API is unreachable")
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

// getEmailListEnv parses a comma-separated email list, lowercased and
// trimmed, dropping empty entries.
func getEmailListEnv(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, part := range parts {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}
