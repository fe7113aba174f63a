package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"agrimarket/cmd"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	root, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}
	defer root.Close()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		MarketplaceBaseURL: goDotEnvVariable("MARKETPLACE_BASE_URL"),
		PincodeBaseURL:     goDotEnvVariable("PINCODE_BASE_URL"),
		RedisAddr:          goDotEnvVariable("REDIS_ADDR"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		CartDebounce:       durationEnvVariable("CART_DEBOUNCE", cmd.DefaultCartDebounce),
		PendingCheckoutTTL: durationEnvVariable("PENDING_CHECKOUT_TTL", 30*time.Minute),
		CartIdleThreshold:  durationEnvVariable("CART_IDLE_THRESHOLD", 30*time.Minute),
		PincodeCacheTTL:    durationEnvVariable("PINCODE_CACHE_TTL", 24*time.Hour),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
