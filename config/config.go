package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port string

	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiImageModel string

	SerpAPIKey     string
	SerpAPIBaseURL string

	OutputImageDir     string
	ReferenceImagePath string
	StyleExemplarPath  string

	AWSRegion     string
	AWSBucketName string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	GeminiTextModel = os.Getenv("GEMINI_TEXT_MODEL")
	if GeminiTextModel == "" {
		GeminiTextModel = "gemini-2.0-flash-exp"
	}

	GeminiImageModel = os.Getenv("GEMINI_IMAGE_MODEL")
	if GeminiImageModel == "" {
		GeminiImageModel = "gemini-2.5-flash-image"
	}

	SerpAPIKey = os.Getenv("SERPAPI_KEY")

	SerpAPIBaseURL = os.Getenv("SERPAPI_BASE_URL")
	if SerpAPIBaseURL == "" {
		SerpAPIBaseURL = "https://serpapi.com/search.json"
	}

	OutputImageDir = os.Getenv("OUTPUT_IMAGE_DIR")
	if OutputImageDir == "" {
		OutputImageDir = "./generated_images"
	}

	// Optional static fallback. On ephemeral hosts the filesystem is wiped
	// between deploys, so users normally upload their own reference instead.
	ReferenceImagePath = os.Getenv("REFERENCE_IMAGE_PATH")

	StyleExemplarPath = os.Getenv("STYLE_EXEMPLAR_PATH")
	if StyleExemplarPath == "" {
		StyleExemplarPath = "./Images/style_exemplar.png"
	}

	AWSRegion = os.Getenv("AWS_REGION")
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
}
