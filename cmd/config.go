package cmd

import "time"

// Config carries everything the composition root needs to wire the app.
// String fields come straight from the environment; durations are parsed by
// the loader in cmd/app.
type Config struct {
	HTTPPort           string
	MarketplaceBaseURL string
	PincodeBaseURL     string
	RedisAddr          string
	JWTSecret          string
	CartDebounce       time.Duration
	PendingCheckoutTTL time.Duration
	CartIdleThreshold  time.Duration
	PincodeCacheTTL    time.Duration
}
