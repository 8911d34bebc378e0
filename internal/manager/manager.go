// Package manager holds the core orchestration: search classification and
// fan-out, booking creation, and the deferred confirmation workflow.
package manager

import (
	"context"
	"log"
	"time"

	"github.com/prasdika/travelbooking/internal/booking"
	"github.com/prasdika/travelbooking/internal/catalog"
	"github.com/prasdika/travelbooking/internal/hub"
	"github.com/prasdika/travelbooking/internal/models"
	"github.com/prasdika/travelbooking/internal/pricing"
)

const lastMinuteWindowDays = 45

type Config struct {
	// ConfirmUnit scales a booking's SleepTime into wall-clock delay.
	// Production uses time.Second; tests shrink it.
	ConfirmUnit time.Duration
}

type Manager struct {
	catalog     catalog.Gateway
	builder     *pricing.Builder
	ledger      *booking.Ledger
	store       *booking.Store
	notifier    hub.Broadcaster
	confirmUnit time.Duration
	now         func() time.Time
}

func New(gw catalog.Gateway, builder *pricing.Builder, ledger *booking.Ledger, store *booking.Store, notifier hub.Broadcaster, cfg Config) *Manager {
	if cfg.ConfirmUnit == 0 {
		cfg.ConfirmUnit = time.Second
	}
	return &Manager{
		catalog:     gw,
		builder:     builder,
		ledger:      ledger,
		store:       store,
		notifier:    notifier,
		confirmUnit: cfg.ConfirmUnit,
		now:         time.Now,
	}
}

// DetermineSearchType classifies a search request. Rules are evaluated in
// order; note the second rule can never fire because the first already
// consumes every request without a departure airport. It is kept as written
// pending a business decision on the intended rule.
func DetermineSearchType(req models.SearchRequest, now time.Time) models.SearchType {
	if req.DepartureAirport == "" {
		return models.SearchTypeHotelOnly
	}
	if req.FromDate != nil && !req.FromDate.After(now.AddDate(0, 0, lastMinuteWindowDays)) && req.DepartureAirport == "" {
		return models.SearchTypeLastMinuteHotels
	}
	return models.SearchTypeHotelAndFlight
}

// Search classifies the request, fetches availability from the catalog and
// assembles priced options. Upstream failures are logged here and reported to
// the caller as a generic server error.
func (m *Manager) Search(ctx context.Context, req models.SearchRequest) models.Response[models.SearchResult] {
	searchType := DetermineSearchType(req, m.now())

	switch searchType {
	case models.SearchTypeHotelOnly, models.SearchTypeLastMinuteHotels:
		hotels, err := m.catalog.FetchHotels(ctx, req.Destination)
		if err != nil {
			return m.searchFailure(req, err)
		}

		// Both hotel classifications report HotelOnly.
		return models.Response[models.SearchResult]{
			Success: true,
			Data: &models.SearchResult{
				Options:    m.builder.BuildHotelOptions(hotels),
				SearchType: models.SearchTypeHotelOnly,
			},
			NotificationType: models.NotificationSuccess,
		}

	default:
		hotels, flights, err := m.catalog.FetchBoth(ctx, req.Destination, req.DepartureAirport)
		if err != nil {
			return m.searchFailure(req, err)
		}

		return models.Response[models.SearchResult]{
			Success: true,
			Data: &models.SearchResult{
				Options:    m.builder.BuildCombinedOptions(hotels, flights),
				SearchType: models.SearchTypeHotelAndFlight,
			},
			NotificationType: models.NotificationSuccess,
		}
	}
}

func (m *Manager) searchFailure(req models.SearchRequest, err error) models.Response[models.SearchResult] {
	log.Printf("search failed for destination=%s departure=%s: %v", req.Destination, req.DepartureAirport, err)
	return models.Response[models.SearchResult]{
		Message:          MsgSearchError,
		NotificationType: models.NotificationServerError,
	}
}

// Book records the chosen option in the ledger and returns the booking code.
func (m *Manager) Book(req models.BookRequest) models.Response[models.BookResult] {
	record := m.ledger.Book(req)

	return models.Response[models.BookResult]{
		Success: true,
		Data: &models.BookResult{
			BookingCode: record.BookingCode,
			BookingTime: record.BookingTime,
		},
		NotificationType: models.NotificationSuccess,
	}
}

// CheckStatus reports the booking's current status. The first call for a
// pending booking arms its one-shot deferred confirmation; repeated calls
// observe the state without re-arming it.
func (m *Manager) CheckStatus(req models.CheckStatusRequest) (resp models.Response[models.StatusResult]) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("check status failed for bookingCode=%s: %v", req.BookingCode, r)
			resp = models.Response[models.StatusResult]{
				Message:          MsgCheckStatusError,
				NotificationType: models.NotificationServerError,
			}
		}
	}()

	record, ok := m.store.Get(req.BookingCode)
	if !ok {
		return models.Response[models.StatusResult]{
			Data:             &models.StatusResult{Status: models.StatusFailed},
			Message:          MsgInvalidBookingCode,
			NotificationType: models.NotificationBadRequest,
		}
	}

	switch record.Status {
	case models.StatusSuccess:
		return models.Response[models.StatusResult]{
			Success:          true,
			Data:             &models.StatusResult{Status: models.StatusSuccess},
			Message:          MsgBookingCompleted,
			NotificationType: models.NotificationSuccess,
		}

	case models.StatusFailed:
		return models.Response[models.StatusResult]{
			Data:             &models.StatusResult{Status: models.StatusFailed},
			Message:          MsgBookingFailed,
			NotificationType: models.NotificationInfo,
		}

	default:
		if m.store.Arm(record.BookingCode) {
			go m.confirm(record)
		}

		return models.Response[models.StatusResult]{
			Data:             &models.StatusResult{Status: models.StatusPending},
			Message:          MsgBookingPending,
			NotificationType: models.NotificationInfo,
		}
	}
}

// confirm is the one-shot deferred confirmation unit. It waits out the
// booking's simulated processing delay, writes the terminal status back to
// the store and broadcasts it. It must never crash the process.
func (m *Manager) confirm(record models.BookingRecord) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("confirmation for bookingCode=%s failed: %v", record.BookingCode, r)
		}
	}()

	time.Sleep(time.Duration(record.SleepTime) * m.confirmUnit)

	status, message := models.StatusSuccess, MsgBookingCompleted
	if record.SearchType == string(models.SearchTypeLastMinuteHotels) {
		status, message = models.StatusFailed, MsgBookingFailed
	}

	m.store.SetStatus(record.BookingCode, status)
	m.notifier.Broadcast(status, message)
}
