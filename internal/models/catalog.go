package models

// Hotel is the raw record shape returned by the hotel availability upstream.
type Hotel struct {
	HotelCode       int    `json:"hotelCode"`
	HotelName       string `json:"hotelName"`
	City            string `json:"city"`
	DestinationCode string `json:"destinationCode"`
}

// Flight is the raw record shape returned by the flight availability upstream.
type Flight struct {
	FlightCode       int    `json:"flightCode"`
	FlightNumber     string `json:"flightNumber"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
}
