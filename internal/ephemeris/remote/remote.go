// Package remote binds the ephemeris port to a sidecar service over HTTP.
// The sidecar wraps the actual astronomy library; this client only moves
// numbers.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bodygraph/internal/domain"
	"bodygraph/internal/ephemeris"
	pkgerrors "bodygraph/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Client is an ephemeris.Provider backed by an HTTP sidecar.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ ephemeris.Provider = (*Client)(nil)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, e.g. for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.client = c }
}

// New builds a client for the sidecar at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, "build ephemeris request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, "ephemeris "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pkgerrors.Newf(pkgerrors.CodeUpstream, "ephemeris %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, "decode ephemeris response", err)
	}
	return nil
}

func (c *Client) JulianDay(ctx context.Context, wall ephemeris.Timestamp) (ephemeris.Epoch, error) {
	q := url.Values{}
	q.Set("year", fmt.Sprint(wall.Year))
	q.Set("month", fmt.Sprint(wall.Month))
	q.Set("day", fmt.Sprint(wall.Day))
	q.Set("hour", fmt.Sprint(wall.Hour))
	q.Set("minute", fmt.Sprint(wall.Minute))
	q.Set("second", fmt.Sprint(wall.Second))
	q.Set("tz_offset", fmt.Sprint(wall.TZOffset))

	var out struct {
		Epoch float64 `json:"epoch"`
	}
	if err := c.get(ctx, "/julian-day", q, &out); err != nil {
		return 0, err
	}
	return ephemeris.Epoch(out.Epoch), nil
}

func (c *Client) Longitude(ctx context.Context, at ephemeris.Epoch, body domain.Body) (float64, error) {
	q := url.Values{}
	q.Set("epoch", fmt.Sprint(float64(at)))
	q.Set("body", string(body))

	var out struct {
		Longitude float64 `json:"longitude"`
	}
	if err := c.get(ctx, "/longitude", q, &out); err != nil {
		return 0, err
	}
	return out.Longitude, nil
}

func (c *Client) SolarCrossing(ctx context.Context, targetLongitude float64, start ephemeris.Epoch) (ephemeris.Epoch, error) {
	q := url.Values{}
	q.Set("target", fmt.Sprint(targetLongitude))
	q.Set("start", fmt.Sprint(float64(start)))

	var out struct {
		Epoch float64 `json:"epoch"`
	}
	if err := c.get(ctx, "/solar-crossing", q, &out); err != nil {
		return 0, err
	}
	return ephemeris.Epoch(out.Epoch), nil
}

func (c *Client) Components(ctx context.Context, at ephemeris.Epoch) (ephemeris.Timestamp, error) {
	q := url.Values{}
	q.Set("epoch", fmt.Sprint(float64(at)))

	var out ephemeris.Timestamp
	if err := c.get(ctx, "/components", q, &out); err != nil {
		return ephemeris.Timestamp{}, err
	}
	return out, nil
}
