// Package pricing turns raw hotel and flight records into priced options.
package pricing

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/prasdika/travelbooking/internal/models"
	"github.com/prasdika/travelbooking/internal/random"
)

// Prices are drawn uniformly from [PriceMin, PriceMax) per option.
const (
	PriceMin = 100.0
	PriceMax = 500.0
)

// Builder assembles options with fresh codes and independently drawn prices.
type Builder struct {
	rng   random.Source
	newID func() string
}

func NewBuilder(rng random.Source) *Builder {
	return &Builder{
		rng:   rng,
		newID: uuid.NewString,
	}
}

// NewBuilderWithIDs overrides the option-code generator, for tests.
func NewBuilderWithIDs(rng random.Source, newID func() string) *Builder {
	return &Builder{rng: rng, newID: newID}
}

// BuildHotelOptions builds one option per hotel with no flight leg. The
// arrival airport carries the hotel's destination code.
func (b *Builder) BuildHotelOptions(hotels []models.Hotel) []models.Option {
	options := make([]models.Option, 0, len(hotels))
	for _, hotel := range hotels {
		options = append(options, models.Option{
			OptionCode:     b.newID(),
			HotelCode:      strconv.Itoa(hotel.HotelCode),
			FlightCode:     "",
			ArrivalAirport: hotel.DestinationCode,
			Price:          b.price(),
			HotelName:      hotel.HotelName,
			City:           hotel.City,
		})
	}
	return options
}

// BuildCombinedOptions builds the full cross product of hotels and flights,
// one option per pair.
func (b *Builder) BuildCombinedOptions(hotels []models.Hotel, flights []models.Flight) []models.Option {
	options := make([]models.Option, 0, len(hotels)*len(flights))
	for _, hotel := range hotels {
		for _, flight := range flights {
			options = append(options, models.Option{
				OptionCode:       b.newID(),
				HotelCode:        strconv.Itoa(hotel.HotelCode),
				FlightCode:       strconv.Itoa(flight.FlightCode),
				FlightNumber:     flight.FlightNumber,
				ArrivalAirport:   flight.ArrivalAirport,
				DepartureAirport: flight.DepartureAirport,
				Price:            b.price(),
				HotelName:        hotel.HotelName,
				City:             hotel.City,
			})
		}
	}
	return options
}

func (b *Builder) price() float64 {
	return PriceMin + b.rng.Float64()*(PriceMax-PriceMin)
}
