package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
	"github.com/go-kit/kit/endpoint"
)

type BoardService interface {
	FetchBoard(ctx context.Context, code, boardType string) (dto.BoardResult, error)
	SearchAirports(ctx context.Context, query string) (dto.AirportSearchResult, error)
	EstimateRoute(ctx context.Context, origin, dest string) (dto.RouteResult, error)
	ClearCache(ctx context.Context) error
}

type LocatorService interface {
	Locate(ctx context.Context, flightNumber string) (dto.LocatedFlight, error)
}

type UsageReader interface {
	Calls() int64
	SoftLimit() int64
}

type BoardEndpoint struct {
	FetchBoard     endpoint.Endpoint
	SearchAirports endpoint.Endpoint
	EstimateRoute  endpoint.Endpoint
	Locate         endpoint.Endpoint
	Usage          endpoint.Endpoint
	ClearCache     endpoint.Endpoint
}

func MakeBoardEndpoint(boardService BoardService, locatorService LocatorService,
	usage UsageReader) BoardEndpoint {
	return BoardEndpoint{
		FetchBoard:     makeFetchBoardEndpoint(boardService),
		SearchAirports: makeSearchAirportsEndpoint(boardService),
		EstimateRoute:  makeEstimateRouteEndpoint(boardService),
		Locate:         makeLocateEndpoint(locatorService),
		Usage:          makeUsageEndpoint(usage),
		ClearCache:     makeClearCacheEndpoint(boardService),
	}
}

func makeFetchBoardEndpoint(service BoardService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.BoardRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.FetchBoard(ctx, request.Code, request.Type)
		if err != nil {
			return nil, fmt.Errorf("board service: %w", err)
		}

		return result, nil
	}
}

func makeSearchAirportsEndpoint(service BoardService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AirportSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.SearchAirports(ctx, request.Query)
		if err != nil {
			return nil, fmt.Errorf("board service: %w", err)
		}

		return result, nil
	}
}

func makeEstimateRouteEndpoint(service BoardService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RouteRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.EstimateRoute(ctx, request.Origin, request.Destination)
		if err != nil {
			return nil, fmt.Errorf("board service: %w", err)
		}

		return result, nil
	}
}

func makeLocateEndpoint(service LocatorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LocateRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.Locate(ctx, request.FlightNumber)
		if err != nil {
			return nil, fmt.Errorf("locator service: %w", err)
		}

		return result, nil
	}
}

func makeUsageEndpoint(usage UsageReader) endpoint.Endpoint {
	return func(_ context.Context, _ interface{}) (interface{}, error) {
		return dto.UsageResponse{
			Calls:     usage.Calls(),
			SoftLimit: usage.SoftLimit(),
		}, nil
	}
}

func makeClearCacheEndpoint(service BoardService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := service.ClearCache(ctx); err != nil {
			return nil, fmt.Errorf("board service: %w", err)
		}

		return dto.Response{Message: "cache cleared"}, nil
	}
}
