// internal/infra/config/config.go
package config

import "os"

// Config holds process-wide environment settings.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string

	// Firebase Auth project (defaults to the GCP project).
	FirebaseProjectID string

	// GCS bucket serving product images.
	ProductImageBucket string

	// Seller id behind the "project" catalog view mode.
	ProjectSellerID string

	// Secret Manager secret holding the SendGrid API key.
	// Empty disables mail sending entirely.
	SendGridSecretName string
	MailFromAddress    string
}

// Load reads environment variables into a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "velora-storefront")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		FirebaseProjectID: getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		ProductImageBucket: getenvDefault("PRODUCT_IMAGE_BUCKET", "velora-product-images"),

		ProjectSellerID: os.Getenv("PROJECT_SELLER_ID"),

		SendGridSecretName: os.Getenv("SENDGRID_SECRET_NAME"),
		MailFromAddress:    getenvDefault("MAIL_FROM_ADDRESS", "no-reply@velora.shop"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
