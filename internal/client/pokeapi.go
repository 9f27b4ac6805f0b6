package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pokedex/viewer/internal/config"
	"pokedex/viewer/internal/domain"
	"pokedex/viewer/internal/proxy"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// PokeAPIClient fetches and decodes catalog pages and entry details.
type PokeAPIClient interface {
	FetchListing(ctx context.Context, offset, limit int) (*domain.ListingPage, error)
	FetchListingByRef(ctx context.Context, ref string) (*domain.ListingPage, error)
	FetchDetailByRef(ctx context.Context, ref string) (*domain.EntryDetail, error)
	FetchDetailByQuery(ctx context.Context, query string) (*domain.EntryDetail, error)
}

type pokeAPIClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
	decoder    *catalogDecoder
}

const resourcePath = "/pokemon"

// NewPokeAPIClient builds a client against cfg.BaseURL. proxySupplier may be nil.
func NewPokeAPIClient(cfg config.PokeAPIConfig, proxySupplier proxy.ProxySupplier) (PokeAPIClient, error) {
	decoder, err := newCatalogDecoder()
	if err != nil {
		return nil, err
	}

	client := resty.NewWithClient(newHTTPClient(cfg.ConnectTimeout, cfg.ReadTimeout)).
		SetTimeout(cfg.ConnectTimeout+cfg.ReadTimeout).
		SetRetryCount(0).
		SetResponseBodyUnlimitedReads(true).
		SetHeader("Accept", "application/json")

	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using proxy: %s", proxyURL)
		}
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &pokeAPIClient{
		rl:         rl,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: client,
		decoder:    decoder,
	}, nil
}

func (c *pokeAPIClient) FetchListing(ctx context.Context, offset, limit int) (*domain.ListingPage, error) {
	if offset < 0 {
		return nil, fmt.Errorf("offset must be >= 0, got %d", offset)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be > 0, got %d", limit)
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	pageURL := c.baseURL + resourcePath + "?" + query.Encode()

	return c.FetchListingByRef(ctx, pageURL)
}

func (c *pokeAPIClient) FetchListingByRef(ctx context.Context, ref string) (*domain.ListingPage, error) {
	body, err := c.fetchJSON(ctx, ref)
	if err != nil {
		return nil, err
	}

	page, err := c.decoder.DecodeListing(body)
	if err != nil {
		log.Warnf("⚠️ Listing at %s did not decode: %v", ref, err)
		return nil, err
	}

	log.Debugf("Fetched listing %s with %d entries", ref, len(page.Entries))
	return page, nil
}

func (c *pokeAPIClient) FetchDetailByRef(ctx context.Context, ref string) (*domain.EntryDetail, error) {
	body, err := c.fetchJSON(ctx, ref)
	if err != nil {
		return nil, err
	}

	detail, err := c.decoder.DecodeDetail(body)
	if err != nil {
		log.Warnf("⚠️ Detail at %s did not decode: %v", ref, err)
		return nil, err
	}

	log.Debugf("Fetched detail #%d %s", detail.ID, detail.Name)
	return detail, nil
}

// FetchDetailByQuery looks up an entry by exact lowercase name or decimal ID.
func (c *pokeAPIClient) FetchDetailByQuery(ctx context.Context, query string) (*domain.EntryDetail, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil, domain.ErrEmptyQuery
	}

	return c.FetchDetailByRef(ctx, c.baseURL+resourcePath+"/"+url.PathEscape(normalized))
}

// fetchJSON issues a GET and returns the body of a 200 response. The body is
// read in full before the status is checked, so a stalled body is a NetworkError.
func (c *pokeAPIClient) fetchJSON(ctx context.Context, reqURL string) ([]byte, error) {
	c.rl.Take()

	log.Debugf("GET %s", reqURL)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(reqURL)
	if err != nil {
		log.Warnf("⚠️ Request to %s failed: %v", reqURL, err)
		return nil, &domain.NetworkError{URL: reqURL, Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		log.Warnf("⚠️ %s returned %s", reqURL, resp.Status())
		return nil, &domain.TransportError{
			URL:        reqURL,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	return resp.Bytes(), nil
}
