package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
	"github.com/Peniel-source/flight-board-service/internal/app/endpoints"
	httptransport "github.com/Peniel-source/flight-board-service/internal/pkg/transport/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(endpts endpoints.Endpoints) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/flights/board/{code}", httptransport.MakeHandlerFunc(
			endpts.BoardEndpoint.FetchBoard,
			decodeBoardRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/flights/locate/{number}", httptransport.MakeHandlerFunc(
			endpts.BoardEndpoint.Locate,
			decodeLocateRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/airports/search", httptransport.MakeHandlerFunc(
			endpts.BoardEndpoint.SearchAirports,
			decodeAirportSearchRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/routes/{origin}/{destination}", httptransport.MakeHandlerFunc(
			endpts.BoardEndpoint.EstimateRoute,
			decodeRouteRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/usage", httptransport.MakeHandlerFunc(
			endpts.BoardEndpoint.Usage,
			decodeEmptyRequest,
			httptransport.ResponseWithBody,
		))

		router.Delete("/cache", httptransport.MakeHandlerFunc(
			endpts.BoardEndpoint.ClearCache,
			decodeEmptyRequest,
			httptransport.ResponseWithBody,
		))
	})

	return router
}

func decodeBoardRequest(_ context.Context, r *http.Request) (interface{}, error) {
	request := dto.BoardRequest{
		Code: chi.URLParam(r, "code"),
		Type: r.URL.Query().Get("type"),
	}
	if request.Type == "" {
		request.Type = dto.BoardTypeDepartures
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	return &request, nil
}

func decodeLocateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	request := dto.LocateRequest{
		FlightNumber: chi.URLParam(r, "number"),
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	return &request, nil
}

func decodeAirportSearchRequest(_ context.Context, r *http.Request) (interface{}, error) {
	request := dto.AirportSearchRequest{
		Query: r.URL.Query().Get("q"),
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	return &request, nil
}

func decodeRouteRequest(_ context.Context, r *http.Request) (interface{}, error) {
	request := dto.RouteRequest{
		Origin:      chi.URLParam(r, "origin"),
		Destination: chi.URLParam(r, "destination"),
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	return &request, nil
}

func decodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil //nolint:nilnil // endpoint takes no request payload
}
