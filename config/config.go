package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
type Config struct {
	JWTSecret        string
	GeminiAPIKey     string
	GeminiModel      string
	StripeSecretKey  string
	FestivalDataPath string
}

// AppConfig holds the application-wide configuration
var AppConfig Config
