package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"biznova/config"
	"biznova/database"
	"biznova/handlers"
	"biznova/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	config.AppConfig.JWTSecret = jwtSecret
	config.AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	config.AppConfig.GeminiModel = os.Getenv("GEMINI_MODEL")
	config.AppConfig.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	config.AppConfig.FestivalDataPath = os.Getenv("FESTIVAL_DATA_PATH")
	if config.AppConfig.FestivalDataPath == "" {
		config.AppConfig.FestivalDataPath = "data/festivals.csv"
	}

	if config.AppConfig.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set; assistant replies will use the deterministic formatter")
	}

	// Initialize database
	database.Connect(databaseURL)
	defer database.Close()

	// Wire stores, forecasting pipeline, and assistant
	handlers.Init()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":3000"))
}
