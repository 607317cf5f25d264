package aerodata

import (
	"strings"
	"testing"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeFlight(t *testing.T) {
	normalizeRequest := func(raw Flight, want *dto.FlightRecord) func(t *testing.T) {
		return func(t *testing.T) {
			got := NormalizeFlight(raw)

			if want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}

			if got == nil {
				t.Fatal("expected a record, got nil")
			}

			diff := cmp.Diff(*want, *got)
			if diff != "" {
				t.Fatalf("NormalizeFlight mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("full_record", normalizeRequest(
		Flight{
			Number:  "BA 117",
			Status:  "Scheduled",
			Airline: &Airline{Name: "British Airways"},
			Movement: &Movement{
				Airport:       &MovementAirport{IATA: "JFK", ICAO: "KJFK", Name: "New York John F. Kennedy"},
				ScheduledTime: &ScheduledTime{Local: "2026-03-01 14:35+00:00"},
				Terminal:      "5",
				Gate:          "B32",
			},
			Aircraft: &Aircraft{Model: "Boeing 777-300ER"},
		},
		&dto.FlightRecord{
			ID:              "BA 117",
			FlightNumber:    "BA 117",
			Airline:         "British Airways",
			Destination:     "JFK",
			DestinationName: "New York John F. Kennedy",
			ScheduledTime:   "14:35",
			Gate:            "B32",
			Terminal:        "5",
			Status:          "On Time",
			Aircraft:        "Boeing 777-300ER",
		},
	))

	t.Run("missing_scheduled_time_yields_sentinel", normalizeRequest(
		Flight{
			Number: "EK 215",
			Movement: &Movement{
				Airport: &MovementAirport{IATA: "LAX"},
			},
		},
		&dto.FlightRecord{
			ID:              "EK 215",
			FlightNumber:    "EK 215",
			Airline:         "Unknown",
			Destination:     "LAX",
			DestinationName: "Unknown",
			ScheduledTime:   "--:--",
			Gate:            "TBA",
			Terminal:        "N/A",
			Status:          "On Time",
			Aircraft:        "N/A",
		},
	))

	t.Run("iso_timestamp_formats_24h", normalizeRequest(
		Flight{
			Number: "QF 12",
			Movement: &Movement{
				ScheduledTime: &ScheduledTime{Local: "2026-03-01T21:05+10:00"},
			},
		},
		&dto.FlightRecord{
			ID:              "QF 12",
			FlightNumber:    "QF 12",
			Airline:         "Unknown",
			Destination:     "N/A",
			DestinationName: "Unknown",
			ScheduledTime:   "21:05",
			Gate:            "TBA",
			Terminal:        "N/A",
			Status:          "On Time",
			Aircraft:        "N/A",
		},
	))

	t.Run("terminal_fallback_gate", normalizeRequest(
		Flight{
			Number: "AF 007",
			Movement: &Movement{
				Terminal: "2E",
			},
		},
		&dto.FlightRecord{
			ID:              "AF 007",
			FlightNumber:    "AF 007",
			Airline:         "Unknown",
			Destination:     "N/A",
			DestinationName: "Unknown",
			ScheduledTime:   "--:--",
			Gate:            "T2E",
			Terminal:        "2E",
			Status:          "On Time",
			Aircraft:        "N/A",
		},
	))

	t.Run("icao_fallback_destination", normalizeRequest(
		Flight{
			Number: "DL 1",
			Movement: &Movement{
				Airport: &MovementAirport{ICAO: "EGLL"},
			},
		},
		&dto.FlightRecord{
			ID:              "DL 1",
			FlightNumber:    "DL 1",
			Airline:         "Unknown",
			Destination:     "EGLL",
			DestinationName: "Unknown",
			ScheduledTime:   "--:--",
			Gate:            "TBA",
			Terminal:        "N/A",
			Status:          "On Time",
			Aircraft:        "N/A",
		},
	))

	t.Run("empty_record_is_dropped", normalizeRequest(Flight{}, nil))
}

func TestNormalizeFlight_Status(t *testing.T) {
	statusRequest := func(raw, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := NormalizeFlight(Flight{Number: "AA 100", Status: raw})
			assert.Equal(t, want, got.Status)
		}
	}

	t.Run("expected_maps_to_on_time", statusRequest("Expected", "On Time"))
	t.Run("active_maps_to_boarding", statusRequest("Active", "Boarding"))
	t.Run("landed_maps_to_departed", statusRequest("Landed", "Departed"))
	t.Run("cancelled_passes", statusRequest("Cancelled", "Cancelled"))
	t.Run("unknown_passes_verbatim", statusRequest("Diverted", "Diverted"))
	t.Run("absent_defaults_on_time", statusRequest("", "On Time"))
}

func TestNormalizeFlight_MissingNumberGetsGeneratedID(t *testing.T) {
	got := NormalizeFlight(Flight{
		Movement: &Movement{Airport: &MovementAirport{IATA: "DXB"}},
	})

	assert.NotNil(t, got)
	assert.Equal(t, "N/A", got.FlightNumber)
	assert.True(t, strings.HasPrefix(got.ID, "FL"))
	assert.Len(t, got.ID, 8)
}

func TestNormalizeFlights_DropsNils(t *testing.T) {
	got := NormalizeFlights([]Flight{
		{Number: "AA 100"},
		{},
		{Number: "AA 200"},
	})

	assert.Len(t, got, 2)
	assert.Equal(t, "AA 100", got[0].FlightNumber)
	assert.Equal(t, "AA 200", got[1].FlightNumber)
}

func TestNormalizeAirports(t *testing.T) {
	items := []Airport{
		{IATA: "JFK", Name: "John F. Kennedy International", MunicipalityName: "New York",
			CountryCode: "US", Location: &Location{Lat: 40.64, Lon: -73.78}},
		{ICAO: "EGLC", Name: "London City"}, // no IATA, discarded
		{IATA: "LHR", Name: "London Heathrow", ShortName: "Heathrow", CountryCode: "GB"},
	}

	got := NormalizeAirports(items)

	want := []dto.AirportRecord{
		{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "US",
			Coordinates: dto.Coordinates{Lat: 40.64, Lon: -73.78}},
		{Code: "LHR", Name: "London Heathrow", City: "Heathrow", Country: "GB"},
	}

	diff := cmp.Diff(want, got)
	if diff != "" {
		t.Fatalf("NormalizeAirports mismatch (-want +got):\n%s", diff)
	}
}
