package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	pkgerrors "bodygraph/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Nominatim geocodes against an OpenStreetMap Nominatim instance.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NominatimOption configures the client.
type NominatimOption func(*Nominatim)

// WithHTTPClient swaps the underlying HTTP client, e.g. for tests.
func WithHTTPClient(c *http.Client) NominatimOption {
	return func(n *Nominatim) { n.client = c }
}

// NewNominatim builds a client for the given instance. The user agent is
// mandatory per the Nominatim usage policy.
func NewNominatim(baseURL, userAgent string, opts ...NominatimOption) *Nominatim {
	n := &Nominatim{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (n *Nominatim) Geocode(ctx context.Context, place string) (Location, error) {
	if place == "" {
		return Location{}, pkgerrors.Validation("place", "must not be empty")
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", n.baseURL, url.QueryEscape(place))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Location{}, pkgerrors.Wrap(pkgerrors.CodeInternal, "build geocode request", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return Location{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "geocode "+place, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, pkgerrors.Newf(pkgerrors.CodeUpstream, "geocode %s: status %d", place, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Location{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "decode geocode response", err)
	}
	if len(results) == 0 {
		return Location{}, pkgerrors.New(pkgerrors.CodeNotFound, "place not found: "+place)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "parse latitude", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "parse longitude", err)
	}

	return Location{
		Place:     place,
		Latitude:  lat,
		Longitude: lon,
		Address:   results[0].DisplayName,
	}, nil
}
