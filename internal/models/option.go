package models

import "time"

// Option is a priced, bookable hotel plus optional flight leg. Options are
// produced fresh for every search and never persisted; the option code is
// unique within one search response only.
type Option struct {
	OptionCode       string  `json:"optionCode"`
	HotelCode        string  `json:"hotelCode"`
	FlightCode       string  `json:"flightCode"`
	FlightNumber     string  `json:"flightNumber,omitempty"`
	ArrivalAirport   string  `json:"arrivalAirport"`
	DepartureAirport string  `json:"departureAirport,omitempty"`
	Price            float64 `json:"price"`
	HotelName        string  `json:"hotelName"`
	City             string  `json:"city"`
}

// BookingRecord lives in the in-memory ledger for the lifetime of the process.
// SleepTime is the simulated confirmation latency in seconds. SearchType is
// empty unless the booking was classified as last-minute.
type BookingRecord struct {
	BookingCode string        `json:"bookingCode"`
	SleepTime   int           `json:"sleepTime"`
	BookingTime time.Time     `json:"bookingTime"`
	Status      BookingStatus `json:"status"`
	SearchType  string        `json:"searchType,omitempty"`
}
