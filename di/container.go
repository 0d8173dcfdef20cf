package di

import (
	"log/slog"
	"os"

	"tm-discovery/api"
	"tm-discovery/api/discovery"
	"tm-discovery/config"
)

// Container holds all application dependencies.
type Container struct {
	Logger       *slog.Logger
	HTTPClient   *api.HTTPClient
	DiscoveryAPI discovery.DiscoveryAPI
}

// NewContainer initializes and wires up all dependencies. Anything but
// env "prod" (or a missing API key) gets the fixture-backed mock.
func NewContainer(env string) *Container {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("initializing container", "env", env)

	apiKey := config.APIKey()

	var discoveryClient discovery.DiscoveryAPI
	var httpClient *api.HTTPClient
	if env != "prod" || apiKey == "" {
		logger.Info("using mock discovery api")
		discoveryClient = discovery.NewDiscoveryApiClientMock(logger)
	} else {
		logger.Info("using prod discovery api")
		httpClient = api.NewHTTPClient(config.DISCOVERY_ENDPOINT_BASE_V2)
		discoveryClient = discovery.NewDiscoveryApiClient(
			httpClient,
			config.DISCOVERY_ROOT_URL,
			apiKey,
			logger,
		)
	}

	return &Container{
		Logger:       logger,
		HTTPClient:   httpClient,
		DiscoveryAPI: discoveryClient,
	}
}
