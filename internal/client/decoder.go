package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"pokedex/viewer/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

const (
	kindListing = "listing"
	kindDetail  = "detail"
)

var errBodyEmpty = errors.New("body empty")

type listingPayload struct {
	Count    wholeNumber `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

type detailPayload struct {
	ID     wholeNumber `json:"id"`
	Name   string      `json:"name"`
	Height wholeNumber `json:"height"`
	Weight wholeNumber `json:"weight"`
	Types  []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
}

// wholeNumber is an integer that may be written as 2 or 2.0; JSON Schema treats
// both as integers.
type wholeNumber int

func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return fmt.Errorf("%s is not a whole number in range", data)
	}
	*n = wholeNumber(f)
	return nil
}

// catalogDecoder turns raw response bodies into domain records. Every body is
// checked against its schema before it is unmarshalled, so a decode either
// yields a complete record or a *domain.DecodeError.
type catalogDecoder struct {
	listing *gojsonschema.Schema
	detail  *gojsonschema.Schema
}

func newCatalogDecoder() (*catalogDecoder, error) {
	listing, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(listingSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile listing schema: %w", err)
	}

	detail, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(detailSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile detail schema: %w", err)
	}

	return &catalogDecoder{
		listing: listing,
		detail:  detail,
	}, nil
}

func (d *catalogDecoder) DecodeListing(body []byte) (*domain.ListingPage, error) {
	var payload listingPayload
	if err := decode(d.listing, kindListing, body, &payload); err != nil {
		return nil, err
	}

	page := &domain.ListingPage{
		TotalCount:      int(payload.Count),
		NextPageRef:     deref(payload.Next),
		PreviousPageRef: deref(payload.Previous),
		Entries:         make([]domain.EntrySummary, 0, len(payload.Results)),
	}
	for _, result := range payload.Results {
		page.Entries = append(page.Entries, domain.EntrySummary{
			Name:      result.Name,
			DetailRef: result.URL,
		})
	}

	log.Debugf("Decoded listing with %d of %d entries", len(page.Entries), page.TotalCount)
	return page, nil
}

func (d *catalogDecoder) DecodeDetail(body []byte) (*domain.EntryDetail, error) {
	var payload detailPayload
	if err := decode(d.detail, kindDetail, body, &payload); err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(payload.Types))
	for _, t := range payload.Types {
		categories = append(categories, t.Type.Name)
	}

	return &domain.EntryDetail{
		ID:           int(payload.ID),
		Name:         payload.Name,
		Height:       int(payload.Height),
		Weight:       int(payload.Weight),
		Categories:   categories,
		ThumbnailRef: deref(payload.Sprites.FrontDefault),
	}, nil
}

func decode(schema *gojsonschema.Schema, kind string, body []byte, dest any) error {
	if len(body) == 0 {
		return &domain.DecodeError{Kind: kind, Err: errBodyEmpty}
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// gojsonschema fails here when the document itself is not JSON.
		return &domain.DecodeError{Kind: kind, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if !res.Valid() {
		return &domain.DecodeError{Kind: kind, Err: schemaViolation(res)}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &domain.DecodeError{Kind: kind, Err: fmt.Errorf("unable to unmarshal the data: %w", err)}
	}
	return nil
}

func schemaViolation(res *gojsonschema.Result) error {
	msgs := make([]string, 0, len(res.Errors()))
	for _, resErr := range res.Errors() {
		msgs = append(msgs, fieldMessage(resErr))
	}
	sort.Strings(msgs)
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(resErr gojsonschema.ResultError) string {
	switch resErr.(type) {
	case *gojsonschema.RequiredError:
		return fmt.Sprintf("field '%s' is missing", joinField(resErr.Field(), resErr.Details()["property"]))
	case *gojsonschema.InvalidTypeError:
		return fmt.Sprintf("field '%s' should be of type %s", resErr.Field(), resErr.Details()["expected"])
	default:
		return fmt.Sprintf("field '%s': %s", resErr.Field(), resErr.Description())
	}
}

func joinField(parent string, property any) string {
	if parent == "" || parent == gojsonschema.STRING_CONTEXT_ROOT {
		return fmt.Sprint(property)
	}
	return fmt.Sprintf("%s.%v", parent, property)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
