package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Peniel-source/flight-board-service/internal/pkg/exception"
)

var (
	ErrAirportCodeRequired = exception.ApplicationError{
		Message:    "airport code is required",
		StatusCode: http.StatusBadRequest,
	}

	ErrInvalidBoardType = exception.ApplicationError{
		Message:    "board type must be departures or arrivals",
		StatusCode: http.StatusBadRequest,
	}

	ErrSearchQueryRequired = exception.ApplicationError{
		Message:    "search query is required",
		StatusCode: http.StatusBadRequest,
	}

	ErrRouteCodesRequired = exception.ApplicationError{
		Message:    "origin and destination codes are required",
		StatusCode: http.StatusBadRequest,
	}

	ErrFlightNumberTooShort = exception.ApplicationError{
		Message:    "flight number too short (e.g. AA100, EK215)",
		StatusCode: http.StatusBadRequest,
	}

	ErrAirportsNotFound = exception.ApplicationError{
		Message:    "airports not found",
		StatusCode: http.StatusNotFound,
	}

	ErrInvalidRouteCodes = exception.ApplicationError{
		Message:    "invalid airport codes",
		StatusCode: http.StatusNotFound,
	}

	ErrNoValidIATACodes = exception.ApplicationError{
		Message:    "no valid IATA codes",
		StatusCode: http.StatusNotFound,
	}
)

// NoFlightsError is the valid-empty-result failure for a board with no
// movements inside the lookahead window.
func NoFlightsError(boardType string, window time.Duration) error {
	return exception.ApplicationError{
		Message:    fmt.Sprintf("no %s in next %dh", boardType, int(window.Hours())),
		StatusCode: http.StatusNotFound,
	}
}

func NoAirportsError(query string) error {
	return exception.ApplicationError{
		Message:    fmt.Sprintf("no airports for %q", query),
		StatusCode: http.StatusNotFound,
	}
}

func FlightNotFoundError(number string) error {
	return exception.ApplicationError{
		Message:    fmt.Sprintf("flight %s not found, load a flight board first to see available flights", number),
		StatusCode: http.StatusNotFound,
	}
}
