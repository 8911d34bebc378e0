// Package booking holds the in-memory booking ledger and its record store.
package booking

import (
	"time"

	"github.com/prasdika/travelbooking/internal/models"
	"github.com/prasdika/travelbooking/internal/random"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	codeLength   = 6

	// Simulated confirmation latency bounds, in seconds: [sleepMin, sleepMax).
	sleepMin = 5
	sleepMax = 10

	// Bookings departing within this window are classified last-minute.
	lastMinuteWindowDays = 45
)

// Ledger creates booking records and inserts them into the shared store.
type Ledger struct {
	store *Store
	rng   random.Source
	now   func() time.Time
}

func NewLedger(store *Store, rng random.Source) *Ledger {
	return &Ledger{store: store, rng: rng, now: time.Now}
}

// NewLedgerWithClock fixes the ledger's clock, for tests.
func NewLedgerWithClock(store *Store, rng random.Source, now func() time.Time) *Ledger {
	return &Ledger{store: store, rng: rng, now: now}
}

// Book generates a booking record for the chosen option and stores it with
// status Pending. It never fails for a validated request.
func (l *Ledger) Book(req models.BookRequest) models.BookingRecord {
	now := l.now()

	record := models.BookingRecord{
		BookingCode: l.generateCode(),
		SleepTime:   sleepMin + l.rng.Intn(sleepMax-sleepMin),
		BookingTime: now,
		Status:      models.StatusPending,
	}

	if from := req.SearchRequest.FromDate; from != nil {
		if !from.Before(now) && !from.After(now.AddDate(0, 0, lastMinuteWindowDays)) {
			record.SearchType = string(models.SearchTypeLastMinuteHotels)
		}
	}

	l.store.Put(record)
	return record
}

// generateCode draws 6 characters uniformly from [A-Za-z0-9]. The 62^6 space
// makes collisions unlikely; live ones are re-drawn rather than rejected.
func (l *Ledger) generateCode() string {
	for {
		code := make([]byte, codeLength)
		for i := range code {
			code[i] = codeAlphabet[l.rng.Intn(len(codeAlphabet))]
		}
		if !l.store.Exists(string(code)) {
			return string(code)
		}
	}
}
