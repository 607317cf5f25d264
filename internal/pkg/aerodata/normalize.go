package aerodata

import (
	"math/rand"
	"time"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
)

var statusMap = map[string]string{
	"Expected":  "On Time",
	"Scheduled": "On Time",
	"Active":    "Boarding",
	"Landed":    "Departed",
	"Departed":  "Departed",
	"Cancelled": "Cancelled",
	"Delayed":   "Delayed",
}

// scheduledTime.local comes back in a handful of ISO-ish shapes depending
// on the endpoint version.
var localTimeLayouts = []string{
	"2006-01-02 15:04-07:00",
	"2006-01-02T15:04-07:00",
	"2006-01-02 15:04:05-07:00",
	time.RFC3339,
}

// NormalizeFlights maps raw board records into the stable internal shape,
// dropping the ones that cannot be normalized.
func NormalizeFlights(raw []Flight) []dto.FlightRecord {
	records := make([]dto.FlightRecord, 0, len(raw))

	for _, f := range raw {
		if rec := NormalizeFlight(f); rec != nil {
			records = append(records, *rec)
		}
	}

	return records
}

// NormalizeFlight maps one raw flight into a dto.FlightRecord. It never
// fails: a record too empty to be usable yields nil, never a partially
// populated record.
func NormalizeFlight(raw Flight) *dto.FlightRecord {
	if raw.Number == "" && raw.Movement == nil {
		return nil
	}

	rec := dto.FlightRecord{
		ID:              raw.Number,
		FlightNumber:    raw.Number,
		Airline:         "Unknown",
		Destination:     "N/A",
		DestinationName: "Unknown",
		ScheduledTime:   "--:--",
		Gate:            "TBA",
		Terminal:        "N/A",
		Aircraft:        "N/A",
	}

	if rec.ID == "" {
		rec.ID = randomFlightID()
		rec.FlightNumber = "N/A"
	}

	if raw.Airline != nil && raw.Airline.Name != "" {
		rec.Airline = raw.Airline.Name
	}

	if mv := raw.Movement; mv != nil {
		if ap := mv.Airport; ap != nil {
			switch {
			case ap.IATA != "":
				rec.Destination = ap.IATA
			case ap.ICAO != "":
				rec.Destination = ap.ICAO
			}

			if ap.Name != "" {
				rec.DestinationName = ap.Name
			}
		}

		if st := mv.ScheduledTime; st != nil && st.Local != "" {
			rec.ScheduledTime = formatLocalTime(st.Local)
		}

		switch {
		case mv.Gate != "":
			rec.Gate = mv.Gate
		case mv.Terminal != "":
			rec.Gate = "T" + mv.Terminal
		}

		if mv.Terminal != "" {
			rec.Terminal = mv.Terminal
		}
	}

	rec.Status = normalizeStatus(raw.Status)

	if raw.Aircraft != nil && raw.Aircraft.Model != "" {
		rec.Aircraft = raw.Aircraft.Model
	}

	return &rec
}

// NormalizeAirports maps search results into AirportRecords, discarding
// entries without an IATA code.
func NormalizeAirports(items []Airport) []dto.AirportRecord {
	airports := make([]dto.AirportRecord, 0, len(items))

	for _, item := range items {
		if item.IATA == "" {
			continue
		}

		city := "Unknown"
		switch {
		case item.MunicipalityName != "":
			city = item.MunicipalityName
		case item.ShortName != "":
			city = item.ShortName
		}

		rec := dto.AirportRecord{
			Code:    item.IATA,
			Name:    item.Name,
			City:    city,
			Country: item.CountryCode,
		}

		if item.Location != nil {
			rec.Coordinates = dto.Coordinates{Lat: item.Location.Lat, Lon: item.Location.Lon}
		}

		airports = append(airports, rec)
	}

	return airports
}

// normalizeStatus maps known upstream statuses to the display set and lets
// unrecognized values pass through verbatim.
func normalizeStatus(raw string) string {
	if mapped, ok := statusMap[raw]; ok {
		return mapped
	}

	if raw != "" {
		return raw
	}

	return "On Time"
}

// formatLocalTime renders the upstream local timestamp as HH:MM in 24-hour
// form, keeping the timestamp's own offset.
func formatLocalTime(local string) string {
	for _, layout := range localTimeLayouts {
		if t, err := time.Parse(layout, local); err == nil {
			return t.Format("15:04")
		}
	}

	return "--:--"
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomFlightID() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}

	return "FL" + string(b)
}
