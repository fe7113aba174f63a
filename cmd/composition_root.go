package cmd

import (
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	httpadapter "agrimarket/internal/adapters/in/http"
	"agrimarket/internal/adapters/out/marketplace"
	"agrimarket/internal/adapters/out/pincode"
	"agrimarket/internal/adapters/out/redisstore"
	"agrimarket/internal/core/application/cartsync"
	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/application/usecases/queries"
	"agrimarket/internal/core/domain/services"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/jobs"
)

// CompositionRoot wires adapters to use cases. Shared infrastructure (the
// marketplace client, the redis client, the synchronizer registry) is built
// once; handlers are created per consumer.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	marketplaceClient *marketplace.Client
	redisClient       *goredis.Client
	registry          *cartsync.Registry
	checkoutStore     ports.CheckoutStore
	pincodeResolver   ports.PincodeResolver
	validator         services.CheckoutValidator
}

// NewCompositionRoot builds the shared infrastructure from config.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	marketplaceClient := marketplace.NewClient(config.MarketplaceBaseURL, 0)
	redisClient := goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})

	checkoutStore, err := redisstore.NewCheckoutStore(redisClient)
	if err != nil {
		return nil, err
	}

	var resolver ports.PincodeResolver = pincode.NewResolver(config.PincodeBaseURL, 0)
	resolver, err = redisstore.NewCachingPincodeResolver(resolver, redisClient, config.PincodeCacheTTL, logger)
	if err != nil {
		return nil, err
	}

	registry := cartsync.NewRegistry(marketplaceClient, config.CartDebounce, logger)

	return &CompositionRoot{
		config:            config,
		logger:            logger,
		marketplaceClient: marketplaceClient,
		redisClient:       redisClient,
		registry:          registry,
		checkoutStore:     checkoutStore,
		pincodeResolver:   resolver,
		validator:         services.NewCheckoutValidator(),
	}, nil
}

// Close disposes every live synchronizer and the redis connection.
func (c *CompositionRoot) Close() error {
	c.registry.DisposeAll()
	return c.redisClient.Close()
}

// CreateHTTPServer assembles the echo surface with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.NewAuthenticator([]byte(c.config.JWTSecret)),
		c.registry,
		commands.NewSaveAddressCommandHandler(c.marketplaceClient),
		commands.NewDeleteAddressCommandHandler(c.marketplaceClient),
		commands.NewSetDefaultAddressCommandHandler(c.marketplaceClient),
		commands.NewPlaceCodOrderCommandHandler(c.registry, c.validator, c.marketplaceClient),
		commands.NewBeginGatewayCheckoutCommandHandler(
			c.registry, c.validator, c.marketplaceClient, c.checkoutStore, c.config.PendingCheckoutTTL),
		commands.NewCompleteGatewayCheckoutCommandHandler(
			c.marketplaceClient, c.checkoutStore, c.registry, c.logger),
		commands.NewAbortGatewayCheckoutCommandHandler(c.checkoutStore),
		commands.NewCancelOrderCommandHandler(c.marketplaceClient),
		commands.NewRequestReturnCommandHandler(c.marketplaceClient),
		commands.NewRequestReplacementCommandHandler(c.marketplaceClient),
		queries.NewResolvePincodeQueryHandler(c.pincodeResolver),
		queries.NewGetCartQueryHandler(c.registry),
		queries.NewGetAddressesQueryHandler(c.marketplaceClient),
		queries.NewGetOrdersQueryHandler(c.marketplaceClient),
		queries.NewGetOrderQueryHandler(c.marketplaceClient),
		queries.NewDownloadInvoiceQueryHandler(c.marketplaceClient),
	)
}

// CreateJobManager assembles the background jobs over the shared registry.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.registry, c.config.CartIdleThreshold, c.logger)
}

// DefaultCartDebounce is the write debounce used when the environment does
// not override it.
const DefaultCartDebounce = 500 * time.Millisecond
