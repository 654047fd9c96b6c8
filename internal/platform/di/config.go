// internal/platform/di/config.go
package di

import (
	"os"
	"strings"
)

// Config is the env-resolved runtime settings bundle. Load never fails;
// missing values degrade per-feature inside the container.
type Config struct {
	Port      string
	ProjectID string

	// DatabaseURL selects the Postgres repositories when set; otherwise
	// the Firestore repositories are used.
	DatabaseURL string

	// SendGridAPIKey wins when set; otherwise SendGridSecretName is
	// resolved through Secret Manager.
	SendGridAPIKey     string
	SendGridSecretName string

	AppBaseURL  string
	FromAddress string

	// GCPCredentialsFile is mainly for local dev; production uses ADC.
	GCPCredentialsFile string
}

func LoadConfig() *Config {
	return &Config{
		Port:               env("PORT"),
		ProjectID:          resolveProjectID(),
		DatabaseURL:        env("DATABASE_URL"),
		SendGridAPIKey:     env("SENDGRID_API_KEY"),
		SendGridSecretName: envDefault("SENDGRID_API_KEY_SECRET", "leaguehub-sendgrid-api-key"),
		AppBaseURL:         envDefault("APP_BASE_URL", "http://localhost:5173"),
		FromAddress:        envDefault("MAIL_FROM_ADDRESS", "noreply@leaguehub.app"),
		GCPCredentialsFile: env("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

func resolveProjectID() string {
	for _, key := range []string{"PROJECT_ID", "GOOGLE_CLOUD_PROJECT", "FIRESTORE_PROJECT_ID"} {
		if v := env(key); v != "" {
			return v
		}
	}
	return ""
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envDefault(key, fallback string) string {
	if v := env(key); v != "" {
		return v
	}
	return fallback
}
