package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
)

type BoardFetcher interface {
	FetchBoard(ctx context.Context, code, boardType string) (dto.BoardResult, error)
}

// Display names for the airports the locator scans, plus a few common hubs.
// Codes missing from the table fall back to the code itself.
var airportNames = map[string]string{
	"JFK": "John F. Kennedy Int'l",
	"LHR": "London Heathrow",
	"DXB": "Dubai International",
	"LAX": "Los Angeles Int'l",
	"CDG": "Paris Charles de Gaulle",
	"FRA": "Frankfurt Airport",
	"SIN": "Singapore Changi",
	"HND": "Tokyo Haneda",
	"ORD": "Chicago O'Hare",
	"ATL": "Atlanta Hartsfield",
}

// LocatorService finds a flight by number by scanning the departure boards
// of a fixed list of major airports, in order, until one matches.
type LocatorService struct {
	Board           BoardFetcher
	Airports        []string
	PacingDelay     time.Duration
	AssumedDuration time.Duration
}

func NewLocatorService(board BoardFetcher, airports []string,
	pacingDelay, assumedDuration time.Duration) *LocatorService {
	return &LocatorService{
		Board:           board,
		Airports:        airports,
		PacingDelay:     pacingDelay,
		AssumedDuration: assumedDuration,
	}
}

// Locate scans the configured airports sequentially for a flight number.
// A failed board fetch skips to the next airport instead of aborting the
// whole search.
func (s *LocatorService) Locate(ctx context.Context, flightNumber string) (dto.LocatedFlight, error) {
	clean := cleanFlightNumber(flightNumber)
	if len(clean) < 2 {
		return dto.LocatedFlight{}, ErrFlightNumberTooShort
	}

	slog.InfoContext(ctx, "searching for flight", slog.String("flight_number", clean))

	for i, airport := range s.Airports {
		if i > 0 {
			// courtesy pacing between board fetches
			select {
			case <-time.After(s.PacingDelay):
			case <-ctx.Done():
				return dto.LocatedFlight{}, fmt.Errorf("flight search cancelled: %w", ctx.Err())
			}
		}

		result, err := s.Board.FetchBoard(ctx, airport, dto.BoardTypeDepartures)
		if err != nil {
			slog.WarnContext(ctx, "no usable board for airport",
				slog.String("airport", airport),
				slog.String("error", err.Error()))

			continue
		}

		for _, record := range result.Flights {
			if !matchFlightNumber(record.FlightNumber, clean) {
				continue
			}

			slog.InfoContext(ctx, "flight found",
				slog.String("airport", airport),
				slog.String("flight_number", record.FlightNumber))

			return dto.LocatedFlight{
				FlightRecord: record,
				OriginCode:   airport,
				OriginName:   airportName(airport),
				ArrivalTime:  estimateArrival(record.ScheduledTime, s.AssumedDuration),
			}, nil
		}
	}

	return dto.LocatedFlight{}, FlightNotFoundError(clean)
}

func cleanFlightNumber(raw string) string {
	return stripWhitespace(strings.ToUpper(strings.TrimSpace(raw)))
}

// matchFlightNumber is deliberately permissive: exact match, substring
// containment either way, or equality after stripping every non-alphanumeric
// character. Formatting differences between carriers make a strict compare
// miss too often.
func matchFlightNumber(candidate, clean string) bool {
	if candidate == "" || candidate == "N/A" {
		return false
	}

	fNum := stripWhitespace(strings.ToUpper(candidate))

	if fNum == clean || strings.Contains(fNum, clean) || strings.Contains(clean, fNum) {
		return true
	}

	return stripNonAlnum(fNum) == stripNonAlnum(clean)
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

func stripNonAlnum(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, s)
}

// estimateArrival adds the assumed flight duration to a HH:MM departure
// time, wrapping past midnight. This is a display estimate, not a real ETA.
func estimateArrival(depTime string, assumed time.Duration) string {
	if depTime == "" || depTime == "--:--" {
		return "N/A"
	}

	t, err := time.Parse("15:04", depTime)
	if err != nil {
		return "N/A"
	}

	total := t.Hour()*60 + t.Minute() + int(assumed.Minutes())

	return fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
}

func airportName(code string) string {
	if name, ok := airportNames[code]; ok {
		return name
	}

	return code
}
