package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prasdika/travelbooking/internal/cache"
	"github.com/prasdika/travelbooking/internal/models"
	"github.com/prasdika/travelbooking/internal/ratelimit"
)

// Upstream names used for rate limiting and error reporting.
const (
	UpstreamHotels  = "hotels"
	UpstreamFlights = "flights"
)

// Gateway fetches availability from the two upstream provider endpoints.
type Gateway interface {
	FetchHotels(ctx context.Context, destination string) ([]models.Hotel, error)
	FetchFlights(ctx context.Context, departureAirport, destination string) ([]models.Flight, error)
	FetchBoth(ctx context.Context, destination, departureAirport string) ([]models.Hotel, []models.Flight, error)
}

// RemoteError is returned when an upstream responds with a non-success status
// or an undecodable payload.
type RemoteError struct {
	Upstream string
	Status   int
	Err      error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s upstream returned status %d: %v", e.Upstream, e.Status, e.Err)
	}
	return fmt.Sprintf("%s upstream: %v", e.Upstream, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Config holds the templated upstream endpoint URLs. HotelsURL must contain a
// {destinationCode} placeholder; FlightsURL must contain {departureAirport}
// and {arrivalAirport}.
type Config struct {
	HotelsURL  string
	FlightsURL string
	Timeout    time.Duration
}

type Client struct {
	httpClient *http.Client
	config     Config
	limiter    *ratelimit.UpstreamLimiter
	cache      cache.Cache
}

func NewClient(cfg Config, limiter *ratelimit.UpstreamLimiter, c cache.Cache) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		limiter:    limiter,
		cache:      c,
	}
}

func (c *Client) FetchHotels(ctx context.Context, destination string) ([]models.Hotel, error) {
	if hotels, found := c.cache.GetHotels(ctx, destination); found {
		return hotels, nil
	}

	endpoint := strings.ReplaceAll(c.config.HotelsURL, "{destinationCode}", url.QueryEscape(destination))

	var hotels []models.Hotel
	if err := c.fetch(ctx, UpstreamHotels, endpoint, &hotels); err != nil {
		return nil, err
	}

	_ = c.cache.SetHotels(ctx, destination, hotels)
	return hotels, nil
}

func (c *Client) FetchFlights(ctx context.Context, departureAirport, destination string) ([]models.Flight, error) {
	if flights, found := c.cache.GetFlights(ctx, departureAirport, destination); found {
		return flights, nil
	}

	endpoint := strings.ReplaceAll(c.config.FlightsURL, "{departureAirport}", url.QueryEscape(departureAirport))
	endpoint = strings.ReplaceAll(endpoint, "{arrivalAirport}", url.QueryEscape(destination))

	var flights []models.Flight
	if err := c.fetch(ctx, UpstreamFlights, endpoint, &flights); err != nil {
		return nil, err
	}

	_ = c.cache.SetFlights(ctx, departureAirport, destination, flights)
	return flights, nil
}

// FetchBoth runs the hotel and flight fetches concurrently and waits for both
// legs to finish. A failure on either leg fails the whole call; the other leg
// still runs to completion and no partial result is surfaced.
func (c *Client) FetchBoth(ctx context.Context, destination, departureAirport string) ([]models.Hotel, []models.Flight, error) {
	type hotelsResult struct {
		hotels []models.Hotel
		err    error
	}
	type flightsResult struct {
		flights []models.Flight
		err     error
	}

	hotelCh := make(chan hotelsResult, 1)
	flightCh := make(chan flightsResult, 1)

	go func() {
		hotels, err := c.FetchHotels(ctx, destination)
		hotelCh <- hotelsResult{hotels: hotels, err: err}
	}()

	go func() {
		flights, err := c.FetchFlights(ctx, departureAirport, destination)
		flightCh <- flightsResult{flights: flights, err: err}
	}()

	hr := <-hotelCh
	fr := <-flightCh

	if hr.err != nil {
		return nil, nil, hr.err
	}
	if fr.err != nil {
		return nil, nil, fr.err
	}

	return hr.hotels, fr.flights, nil
}

func (c *Client) fetch(ctx context.Context, upstream, endpoint string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, upstream); err != nil {
			return &RemoteError{Upstream: upstream, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &RemoteError{Upstream: upstream, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Upstream: upstream, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RemoteError{
			Upstream: upstream,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Upstream: upstream, Err: fmt.Errorf("decoding payload: %w", err)}
	}

	return nil
}
