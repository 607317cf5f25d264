package dto

import (
	"net/http"

	"github.com/Peniel-source/flight-board-service/internal/pkg/exception"
)

const (
	BoardTypeDepartures = "departures"
	BoardTypeArrivals   = "arrivals"
)

// FlightRecord is the normalized shape of one upstream flight movement.
type FlightRecord struct {
	ID              string `json:"id"`
	FlightNumber    string `json:"flight_number"`
	Airline         string `json:"airline"`
	Destination     string `json:"destination"`
	DestinationName string `json:"destination_name"`
	ScheduledTime   string `json:"scheduled_time"`
	Gate            string `json:"gate"`
	Terminal        string `json:"terminal"`
	Status          string `json:"status"`
	Aircraft        string `json:"aircraft"`
}

// BoardResult is a truncated board plus the pre-truncation count.
type BoardResult struct {
	Flights        []FlightRecord `json:"flights"`
	TotalAvailable int            `json:"total_available"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type AirportRecord struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

type AirportSearchResult struct {
	Airports []AirportRecord `json:"airports"`
}

// RouteOption is a synthetic direct-route estimate; no route-network data
// is queried upstream.
type RouteOption struct {
	Type              string   `json:"type"`
	Path              string   `json:"path"`
	DistanceKm        int      `json:"distance_km"`
	DistanceFormatted string   `json:"distance_formatted"`
	DurationMinutes   int      `json:"duration_minutes"`
	DurationFormatted string   `json:"duration_formatted"`
	Stops             int      `json:"stops"`
	Airlines          []string `json:"airlines"`
}

type RouteResult struct {
	Routes []RouteOption `json:"routes"`
}

// LocatedFlight is a board record enriched with its origin and an
// estimated arrival time.
type LocatedFlight struct {
	FlightRecord
	OriginCode  string `json:"origin_code"`
	OriginName  string `json:"origin_name"`
	ArrivalTime string `json:"arrival_time"`
}

type UsageResponse struct {
	Calls     int64 `json:"calls"`
	SoftLimit int64 `json:"soft_limit"`
}

type BoardRequest struct {
	Code string `json:"code" validate:"required"`
	Type string `json:"type" validate:"required,oneof=departures arrivals"`
}

func (r *BoardRequest) Validate() error {
	return validationError(r)
}

type AirportSearchRequest struct {
	Query string `json:"q" validate:"required,min=2"`
}

func (r *AirportSearchRequest) Validate() error {
	return validationError(r)
}

type RouteRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

func (r *RouteRequest) Validate() error {
	return validationError(r)
}

type LocateRequest struct {
	FlightNumber string `json:"flight_number" validate:"required"`
}

func (r *LocateRequest) Validate() error {
	return validationError(r)
}

func validationError(req interface{}) error {
	if err := ValidateSingleError(req); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}
