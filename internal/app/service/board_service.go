package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
	"github.com/Peniel-source/flight-board-service/internal/pkg/board"
	"github.com/Peniel-source/flight-board-service/internal/pkg/exception"
	"github.com/Peniel-source/flight-board-service/internal/pkg/geo"
	"github.com/Peniel-source/flight-board-service/internal/pkg/utils"
)

type AeroClient interface {
	FlightBoard(ctx context.Context, code, boardType string) ([]dto.FlightRecord, int, error)
	SearchAirports(ctx context.Context, query string) ([]dto.AirportRecord, int, error)
}

type BoardCacher interface {
	GetBoard(ctx context.Context, key string) (dto.BoardResult, error)
	SetBoard(ctx context.Context, key string, result dto.BoardResult) error
	GetAirports(ctx context.Context, key string) ([]dto.AirportRecord, error)
	SetAirports(ctx context.Context, key string, airports []dto.AirportRecord) error
	Clear(ctx context.Context) error
}

// BoardService orchestrates cache-then-fetch for board lookups and airport
// search, and synthesizes route estimates from airport coordinates.
type BoardService struct {
	Client         AeroClient
	Cache          BoardCacher
	BoardWindow    time.Duration
	MaxFlights     int
	CruiseSpeedKmh float64
}

func NewBoardService(client AeroClient, cache BoardCacher,
	boardWindow time.Duration, maxFlights int, cruiseSpeedKmh float64) *BoardService {
	return &BoardService{
		Client:         client,
		Cache:          cache,
		BoardWindow:    boardWindow,
		MaxFlights:     maxFlights,
		CruiseSpeedKmh: cruiseSpeedKmh,
	}
}

// FetchBoard returns the departures or arrivals board for one airport.
// Cached results are served without touching the upstream API.
func (s *BoardService) FetchBoard(ctx context.Context, code, boardType string) (dto.BoardResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return dto.BoardResult{}, ErrAirportCodeRequired
	}

	if boardType != dto.BoardTypeDepartures && boardType != dto.BoardTypeArrivals {
		return dto.BoardResult{}, ErrInvalidBoardType
	}

	key := board.BoardKey(code, boardType)

	cached, err := s.Cache.GetBoard(ctx, key)
	if err == nil {
		slog.DebugContext(ctx, "board cache hit", slog.String("key", key))

		return cached, nil
	}

	if !errors.Is(err, board.ErrCacheMiss) {
		slog.WarnContext(ctx, "failed to get board from cache", slog.String("error", err.Error()))
	}

	flights, totalAvailable, err := s.Client.FlightBoard(ctx, code, boardType)
	if err != nil {
		return dto.BoardResult{}, transportError(err)
	}

	// a well-formed response with an empty board is not a hard failure
	if totalAvailable == 0 {
		return dto.BoardResult{}, NoFlightsError(boardType, s.BoardWindow)
	}

	if len(flights) > s.MaxFlights {
		flights = flights[:s.MaxFlights]
	}

	result := dto.BoardResult{
		Flights:        flights,
		TotalAvailable: totalAvailable,
	}

	if err := s.Cache.SetBoard(ctx, key, result); err != nil {
		slog.WarnContext(ctx, "failed to cache board", slog.String("error", err.Error()))
	}

	return result, nil
}

// SearchAirports runs an airport text search, cached by the uppercased
// trimmed query.
func (s *BoardService) SearchAirports(ctx context.Context, query string) (dto.AirportSearchResult, error) {
	key := board.AirportKey(query)
	if key == "" {
		return dto.AirportSearchResult{}, ErrSearchQueryRequired
	}

	cached, err := s.Cache.GetAirports(ctx, key)
	if err == nil {
		slog.DebugContext(ctx, "airport cache hit", slog.String("key", key))

		return dto.AirportSearchResult{Airports: cached}, nil
	}

	if !errors.Is(err, board.ErrCacheMiss) {
		slog.WarnContext(ctx, "failed to get airports from cache", slog.String("error", err.Error()))
	}

	airports, totalItems, err := s.Client.SearchAirports(ctx, query)
	if err != nil {
		return dto.AirportSearchResult{}, transportError(err)
	}

	if totalItems == 0 {
		return dto.AirportSearchResult{}, NoAirportsError(query)
	}

	if len(airports) == 0 {
		return dto.AirportSearchResult{}, ErrNoValidIATACodes
	}

	if err := s.Cache.SetAirports(ctx, key, airports); err != nil {
		slog.WarnContext(ctx, "failed to cache airports", slog.String("error", err.Error()))
	}

	return dto.AirportSearchResult{Airports: airports}, nil
}

type airportLookup struct {
	code    string
	airport dto.AirportRecord
	err     error
}

// EstimateRoute resolves both airports concurrently and synthesizes a single
// direct-route estimate from the great-circle distance. Results are never
// cached beyond the airport lookups themselves.
func (s *BoardService) EstimateRoute(ctx context.Context, origin, dest string) (dto.RouteResult, error) {
	origin = strings.ToUpper(strings.TrimSpace(origin))
	dest = strings.ToUpper(strings.TrimSpace(dest))

	if origin == "" || dest == "" {
		return dto.RouteResult{}, ErrRouteCodesRequired
	}

	results := make(chan airportLookup, 2)
	for _, code := range []string{origin, dest} {
		go func(code string) {
			airport, err := s.resolveAirport(ctx, code)
			results <- airportLookup{code: code, airport: airport, err: err}
		}(code)
	}

	resolved := make(map[string]dto.AirportRecord, 2)
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			if errors.Is(r.err, ErrInvalidRouteCodes) {
				return dto.RouteResult{}, r.err
			}

			var appErr exception.ApplicationError
			if errors.As(r.err, &appErr) && appErr.StatusCode == http.StatusNotFound {
				return dto.RouteResult{}, ErrAirportsNotFound
			}

			return dto.RouteResult{}, r.err
		}

		resolved[r.code] = r.airport
	}

	originAP := resolved[origin]
	destAP := resolved[dest]

	distance := int(math.Round(geo.Haversine(
		originAP.Coordinates.Lat, originAP.Coordinates.Lon,
		destAP.Coordinates.Lat, destAP.Coordinates.Lon,
	)))

	duration := int(math.Round(float64(distance) / s.CruiseSpeedKmh * 60))

	route := dto.RouteOption{
		Type:              "Direct",
		Path:              fmt.Sprintf("%s → %s", origin, dest),
		DistanceKm:        distance,
		DistanceFormatted: utils.FormatDistance(distance),
		DurationMinutes:   duration,
		DurationFormatted: utils.ConvertMinutesToDuration(int64(duration)),
		Stops:             0,
		Airlines:          []string{"Multiple carriers"},
	}

	return dto.RouteResult{Routes: []dto.RouteOption{route}}, nil
}

// ClearCache drops both cache namespaces.
func (s *BoardService) ClearCache(ctx context.Context) error {
	if err := s.Cache.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	slog.InfoContext(ctx, "cache cleared")

	return nil
}

// resolveAirport searches for a code and requires the result list to contain
// that exact code.
func (s *BoardService) resolveAirport(ctx context.Context, code string) (dto.AirportRecord, error) {
	result, err := s.SearchAirports(ctx, code)
	if err != nil {
		return dto.AirportRecord{}, err
	}

	for _, airport := range result.Airports {
		if airport.Code == code {
			return airport, nil
		}
	}

	return dto.AirportRecord{}, ErrInvalidRouteCodes
}

// transportError classifies upstream failures, keeping already-classified
// application errors untouched.
func transportError(err error) error {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return err
	}

	status := http.StatusBadGateway
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}

	return exception.ApplicationError{
		Message:    "upstream request failed",
		StatusCode: status,
		Cause:      err,
	}
}
