package repository

import (
	"context"

	"pokedex/viewer/internal/client"
	"pokedex/viewer/internal/domain"
)

// CatalogRepository is the data source the service depends on. Results and
// errors are exactly those of the underlying source.
type CatalogRepository interface {
	GetPage(ctx context.Context, offset, limit int) (*domain.ListingPage, error)
	GetPageByRef(ctx context.Context, ref string) (*domain.ListingPage, error)
	GetDetailByRef(ctx context.Context, ref string) (*domain.EntryDetail, error)
	GetDetailByQuery(ctx context.Context, query string) (*domain.EntryDetail, error)
}

type catalogRepository struct {
	client client.PokeAPIClient
}

func NewCatalogRepository(client client.PokeAPIClient) CatalogRepository {
	return &catalogRepository{
		client: client,
	}
}

func (r *catalogRepository) GetPage(ctx context.Context, offset, limit int) (*domain.ListingPage, error) {
	return r.client.FetchListing(ctx, offset, limit)
}

func (r *catalogRepository) GetPageByRef(ctx context.Context, ref string) (*domain.ListingPage, error) {
	return r.client.FetchListingByRef(ctx, ref)
}

func (r *catalogRepository) GetDetailByRef(ctx context.Context, ref string) (*domain.EntryDetail, error) {
	return r.client.FetchDetailByRef(ctx, ref)
}

func (r *catalogRepository) GetDetailByQuery(ctx context.Context, query string) (*domain.EntryDetail, error) {
	return r.client.FetchDetailByQuery(ctx, query)
}
