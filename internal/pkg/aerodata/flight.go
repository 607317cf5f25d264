package aerodata

// Raw AeroDataBox response shapes. Optional blocks are pointers so absent
// JSON objects stay distinguishable from empty ones.

type BoardResponse struct {
	Departures []Flight `json:"departures"`
	Arrivals   []Flight `json:"arrivals"`
}

type Flight struct {
	Number   string    `json:"number"`
	Status   string    `json:"status"`
	Airline  *Airline  `json:"airline"`
	Movement *Movement `json:"movement"`
	Aircraft *Aircraft `json:"aircraft"`
}

type Airline struct {
	Name string `json:"name"`
}

type Movement struct {
	Airport       *MovementAirport `json:"airport"`
	ScheduledTime *ScheduledTime   `json:"scheduledTime"`
	Terminal      string           `json:"terminal"`
	Gate          string           `json:"gate"`
}

type MovementAirport struct {
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
	Name string `json:"name"`
}

type ScheduledTime struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`
}

type Aircraft struct {
	Model string `json:"model"`
}

type AirportSearchResponse struct {
	Items []Airport `json:"items"`
}

type Airport struct {
	IATA             string    `json:"iata"`
	ICAO             string    `json:"icao"`
	Name             string    `json:"name"`
	ShortName        string    `json:"shortName"`
	MunicipalityName string    `json:"municipalityName"`
	CountryCode      string    `json:"countryCode"`
	Location         *Location `json:"location"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
