//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var scanAirports = []string{"JFK", "LHR", "DXB", "LAX", "CDG"}

func newLocatorService(board *MockBoardFetcher) *LocatorService {
	// no pacing in tests
	return NewLocatorService(board, scanAirports, 0, 6*time.Hour)
}

func TestLocatorService_Locate(t *testing.T) {
	locateRequest := func(
		flightNumber string,
		setupMock func(m *MockBoardFetcher),
		want dto.LocatedFlight,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockBoardFetcher(t)
			setupMock(m)

			s := newLocatorService(m)

			got, err := s.Locate(context.Background(), flightNumber)

			if wantErr != nil {
				assert.Error(t, err)
				if !errors.Is(err, wantErr) && err.Error() != wantErr.Error() {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			assert.NoError(t, err)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("Locate() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	aa100 := dto.FlightRecord{
		ID:              "AA 100",
		FlightNumber:    "AA 100",
		Airline:         "American Airlines",
		Destination:     "LHR",
		DestinationName: "London Heathrow",
		ScheduledTime:   "14:35",
		Gate:            "B32",
		Terminal:        "8",
		Status:          "On Time",
		Aircraft:        "Boeing 777-300ER",
	}

	otherBoard := dto.BoardResult{Flights: []dto.FlightRecord{
		{FlightNumber: "ZZ 999", ScheduledTime: "09:00"},
	}, TotalAvailable: 1}

	t.Run("too_short_fails_validation", locateRequest(
		" a ",
		func(m *MockBoardFetcher) {},
		dto.LocatedFlight{},
		ErrFlightNumberTooShort,
	))

	t.Run("match_despite_whitespace_difference", locateRequest(
		"AA100",
		func(m *MockBoardFetcher) {
			// board has "AA 100"; the cleaned query is "AA100"
			m.On("FetchBoard", mock.Anything, "JFK", "departures").
				Return(dto.BoardResult{Flights: []dto.FlightRecord{aa100}, TotalAvailable: 1}, nil)
		},
		dto.LocatedFlight{
			FlightRecord: aa100,
			OriginCode:   "JFK",
			OriginName:   "John F. Kennedy Int'l",
			ArrivalTime:  "20:35", // 14:35 + 6h
		},
		nil,
	))

	t.Run("first_airport_in_order_wins", locateRequest(
		"zz999",
		func(m *MockBoardFetcher) {
			m.On("FetchBoard", mock.Anything, "JFK", "departures").
				Return(otherBoard, nil)
		},
		dto.LocatedFlight{
			FlightRecord: otherBoard.Flights[0],
			OriginCode:   "JFK",
			OriginName:   "John F. Kennedy Int'l",
			ArrivalTime:  "15:00",
		},
		nil,
	))

	t.Run("fetch_failure_skips_to_next_airport", locateRequest(
		"AA100",
		func(m *MockBoardFetcher) {
			m.On("FetchBoard", mock.Anything, "JFK", "departures").
				Return(dto.BoardResult{}, errors.New("boom"))
			m.On("FetchBoard", mock.Anything, "LHR", "departures").
				Return(dto.BoardResult{Flights: []dto.FlightRecord{aa100}, TotalAvailable: 1}, nil)
		},
		dto.LocatedFlight{
			FlightRecord: aa100,
			OriginCode:   "LHR",
			OriginName:   "London Heathrow",
			ArrivalTime:  "20:35",
		},
		nil,
	))

	t.Run("not_found_names_cleaned_number", locateRequest(
		" aa 100 ",
		func(m *MockBoardFetcher) {
			for _, airport := range scanAirports {
				m.On("FetchBoard", mock.Anything, airport, "departures").
					Return(otherBoard, nil)
			}
		},
		dto.LocatedFlight{},
		FlightNotFoundError("AA100"),
	))
}

func TestLocatorService_Locate_ArrivalWrapsMidnight(t *testing.T) {
	m := NewMockBoardFetcher(t)

	lateFlight := dto.FlightRecord{FlightNumber: "EK 215", ScheduledTime: "21:30"}
	m.On("FetchBoard", mock.Anything, "JFK", "departures").
		Return(dto.BoardResult{Flights: []dto.FlightRecord{lateFlight}, TotalAvailable: 1}, nil)

	s := newLocatorService(m)

	got, err := s.Locate(context.Background(), "EK215")

	assert.NoError(t, err)
	assert.Equal(t, "03:30", got.ArrivalTime)
}

func TestLocatorService_Locate_NoScheduleMeansNoEstimate(t *testing.T) {
	m := NewMockBoardFetcher(t)

	record := dto.FlightRecord{FlightNumber: "QF 12", ScheduledTime: "--:--"}
	m.On("FetchBoard", mock.Anything, "JFK", "departures").
		Return(dto.BoardResult{Flights: []dto.FlightRecord{record}, TotalAvailable: 1}, nil)

	s := newLocatorService(m)

	got, err := s.Locate(context.Background(), "QF12")

	assert.NoError(t, err)
	assert.Equal(t, "N/A", got.ArrivalTime)
}

func TestMatchFlightNumber(t *testing.T) {
	matchRequest := func(candidate, clean string, want bool) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, matchFlightNumber(candidate, clean))
		}
	}

	t.Run("exact", matchRequest("AA100", "AA100", true))
	t.Run("whitespace_stripped", matchRequest("AA 100", "AA100", true))
	t.Run("substring_candidate_contains_query", matchRequest("AA1004", "AA100", true))
	t.Run("substring_query_contains_candidate", matchRequest("EK2", "EK215", true))
	t.Run("punctuation_stripped", matchRequest("AA-100", "AA100", true))
	t.Run("no_match", matchRequest("BA117", "AA100", false))
	t.Run("placeholder_never_matches", matchRequest("N/A", "NA", false))
	t.Run("empty_never_matches", matchRequest("", "AA100", false))
}

func TestCleanFlightNumber(t *testing.T) {
	assert.Equal(t, "AA100", cleanFlightNumber(" aa 100 "))
	assert.Equal(t, "EK215", cleanFlightNumber("ek\t215"))
}
