package aerodata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Peniel-source/flight-board-service/internal/pkg/usage"
	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string, counter *usage.Counter) *Client {
	c := NewClient(Config{
		APIKey:      "test-key",
		APIHost:     "aerodatabox.p.rapidapi.com",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		BoardWindow: 12 * time.Hour,
		SearchLimit: 20,
	}, counter, nil)

	c.now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	}

	return c
}

func TestClient_FlightBoard(t *testing.T) {
	var gotPath, gotKey, gotHost string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"departures": [
				{"number": "AA 100", "status": "Scheduled",
				 "movement": {"airport": {"iata": "LHR", "name": "London Heathrow"},
				              "scheduledTime": {"local": "2026-03-01 14:35-05:00"}}},
				{}
			],
			"arrivals": []
		}`))
	}))
	defer srv.Close()

	counter := usage.NewCounter(2500)
	c := newTestClient(srv.URL, counter)

	flights, total, err := c.FlightBoard(context.Background(), "jfk", "departures")

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, flights, 1)
	assert.Equal(t, "AA 100", flights[0].FlightNumber)
	assert.Equal(t, "LHR", flights[0].Destination)
	assert.Equal(t, "14:35", flights[0].ScheduledTime)

	// code uppercased, window is now..now+12h at minute precision
	assert.Equal(t, "/flights/airports/iata/JFK/2026-03-01T10:30/2026-03-01T22:30", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "aerodatabox.p.rapidapi.com", gotHost)
	assert.Equal(t, int64(1), counter.Calls())
}

func TestClient_FlightBoard_NoFlightData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, usage.NewCounter(2500))

	_, _, err := c.FlightBoard(context.Background(), "JFK", "departures")
	assert.ErrorIs(t, err, ErrNoFlightData)
}

func TestClient_FlightBoard_UpstreamError(t *testing.T) {
	counter := usage.NewCounter(2500)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("quota exceeded"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, counter)

	_, _, err := c.FlightBoard(context.Background(), "JFK", "departures")

	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Equal(t, "quota exceeded", upstreamErr.Body)

	// the call reached the API, so it still counts
	assert.Equal(t, int64(1), counter.Calls())
}

func TestClient_FlightBoard_Timeout(t *testing.T) {
	counter := usage.NewCounter(2500)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, counter)
	c.cfg.Timeout = 50 * time.Millisecond

	_, _, err := c.FlightBoard(context.Background(), "JFK", "departures")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	// aborted before a response arrived, nothing counted
	assert.Equal(t, int64(0), counter.Calls())
}

func TestClient_SearchAirports(t *testing.T) {
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery

		assert.True(t, strings.HasPrefix(r.URL.Path, "/airports/search/term"))
		w.Write([]byte(`{
			"items": [
				{"iata": "JFK", "name": "John F. Kennedy International",
				 "municipalityName": "New York", "countryCode": "US",
				 "location": {"lat": 40.64, "lon": -73.78}},
				{"icao": "EGLC", "name": "London City"}
			]
		}`))
	}))
	defer srv.Close()

	counter := usage.NewCounter(2500)
	c := newTestClient(srv.URL, counter)

	airports, total, err := c.SearchAirports(context.Background(), "new york")

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, airports, 1)
	assert.Equal(t, "JFK", airports[0].Code)
	assert.Equal(t, "q=new+york&limit=20", gotQuery)
	assert.Equal(t, int64(1), counter.Calls())
}
