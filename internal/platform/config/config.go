// internal/platform/config/config.go
package config

import "os"

// Config holds process-wide environment settings.
type Config struct {
	Port string

	// Firestore substrate
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string // GOOGLE_APPLICATION_CREDENTIALS

	// Firebase Auth (caller identity)
	FirebaseProjectID string

	// Postgres substrate. When DatabaseURLSecret is set, the connection
	// string is resolved from Secret Manager at boot instead.
	DatabaseURL       string
	DatabaseURLSecret string
	GCPProjectID      string
}

// Load reads the environment into a Config.
func Load() *Config {
	defaultProject := os.Getenv("GCP_PROJECT_ID")

	return &Config{
		Port:                     getenvDefault("PORT", "8080"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		DatabaseURLSecret:        os.Getenv("DATABASE_URL_SECRET"),
		GCPProjectID:             defaultProject,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
