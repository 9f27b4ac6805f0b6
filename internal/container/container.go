package container

import (
	"context"
	"fmt"
	"strings"

	"pokedex/viewer/internal/client"
	"pokedex/viewer/internal/config"
	"pokedex/viewer/internal/proxy"
	"pokedex/viewer/internal/repository"
	"pokedex/viewer/internal/service"
	"pokedex/viewer/internal/state"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.PokeAPIClient
	Repository repository.CatalogRepository
	Store      *state.Store

	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	log.SetLevel(level)

	container := &Container{
		Config: cfg,
	}

	// Proxies are probed against a one-entry listing page
	testURL := strings.TrimRight(cfg.PokeAPI.BaseURL, "/") + "/pokemon?limit=1"
	proxySupplier := proxy.NewProxySupplier(ctx, cfg.PokeAPI.Proxies, testURL)

	pokeAPIClient, err := client.NewPokeAPIClient(cfg.PokeAPI, proxySupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client: %w", err)
	}
	container.Client = pokeAPIClient

	catalogRepo := repository.NewCatalogRepository(pokeAPIClient)
	container.Repository = catalogRepo

	store := &state.Store{}
	container.Store = store

	container.Service = service.NewService(
		ctx,
		catalogRepo,
		store,
		cfg.Listing.Offset,
		cfg.Listing.Limit,
	)

	log.Debugf("✅ Container ready for %s", cfg.PokeAPI.BaseURL)
	return container, nil
}

// Close cancels in-flight fetches and waits for them to finish
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	c.Service.Close()

	log.Debug("Container shut down successfully")
	return nil
}
