package aerodata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
	"github.com/Peniel-source/flight-board-service/internal/pkg/usage"
	"github.com/go-redis/redis_rate/v10"
)

const (
	// window bounds are sent as local-naive ISO minutes
	timeLayout = "2006-01-02T15:04"

	boardQuery = "withLeg=false&withCancelled=true&withCodeshared=true&withCargo=false&withPrivate=false"
)

var (
	// ErrNoFlightData means the response carried neither a departures nor
	// an arrivals array.
	ErrNoFlightData = errors.New("no flight data in response")

	ErrRateLimitExceeded = errors.New("upstream rate limit exceeded")
)

// UpstreamError is a non-2xx reply from the API, kept with its status and body.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

type Config struct {
	APIKey       string
	APIHost      string
	BaseURL      string
	Timeout      time.Duration
	BoardWindow  time.Duration
	SearchLimit  int
	RateLimitRPS int
}

// Client talks to the AeroDataBox API via RapidAPI. Every request is bounded
// by the configured timeout and counted against the session usage counter.
// The limiter is optional; when set it throttles outgoing calls.
type Client struct {
	cfg        Config
	httpClient *http.Client
	counter    *usage.Counter
	limiter    *redis_rate.Limiter
	now        func() time.Time
}

func NewClient(cfg Config, counter *usage.Counter, limiter *redis_rate.Limiter) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		counter:    counter,
		limiter:    limiter,
		now:        time.Now,
	}
}

// FlightBoard fetches the board for one airport over the configured lookahead
// window starting now, and returns the normalized records of the requested
// side plus the raw count before normalization dropped anything.
func (c *Client) FlightBoard(ctx context.Context, code, boardType string) ([]dto.FlightRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.allow(ctx); err != nil {
		return nil, 0, err
	}

	from := c.now().UTC()
	to := from.Add(c.cfg.BoardWindow)

	reqURL := fmt.Sprintf("%s/flights/airports/iata/%s/%s/%s?%s",
		c.cfg.BaseURL,
		url.PathEscape(strings.ToUpper(code)),
		from.Format(timeLayout),
		to.Format(timeLayout),
		boardQuery,
	)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, 0, err
	}

	var resp BoardResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal board response: %w", err)
	}

	if resp.Departures == nil && resp.Arrivals == nil {
		return nil, 0, ErrNoFlightData
	}

	raw := resp.Departures
	if boardType == dto.BoardTypeArrivals {
		raw = resp.Arrivals
	}

	return NormalizeFlights(raw), len(raw), nil
}

// SearchAirports runs the text-search endpoint and returns the records that
// carry an IATA code plus the raw item count before filtering.
func (c *Client) SearchAirports(ctx context.Context, query string) ([]dto.AirportRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.allow(ctx); err != nil {
		return nil, 0, err
	}

	reqURL := fmt.Sprintf("%s/airports/search/term?q=%s&limit=%d",
		c.cfg.BaseURL, url.QueryEscape(query), c.cfg.SearchLimit)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, 0, err
	}

	var resp AirportSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal search response: %w", err)
	}

	return NormalizeAirports(resp.Items), len(resp.Items), nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.APIHost)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	// non-2xx replies still count against the quota
	c.counter.Track()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{StatusCode: res.StatusCode, Body: string(body)}
	}

	return body, nil
}

func (c *Client) allow(ctx context.Context) error {
	if c.limiter == nil || c.cfg.RateLimitRPS <= 0 {
		return nil
	}

	res, err := c.limiter.Allow(ctx, "limit:aerodatabox", redis_rate.PerSecond(c.cfg.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}
