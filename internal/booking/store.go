package booking

import (
	"sync"

	"github.com/prasdika/travelbooking/internal/models"
)

type entry struct {
	record models.BookingRecord
	armed  bool
}

// Store is the in-memory booking ledger, keyed by booking code. Records are
// inserted by Book and read by the status check; nothing is ever deleted.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

func (s *Store) Put(record models.BookingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[record.BookingCode] = &entry{record: record}
}

func (s *Store) Get(code string) (models.BookingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[code]
	if !ok {
		return models.BookingRecord{}, false
	}
	return e.record, true
}

func (s *Store) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[code]
	return ok
}

// Arm marks the booking's confirmation as scheduled. It returns true only on
// the first call for a given code, so at most one deferred confirmation unit
// ever runs per booking.
func (s *Store) Arm(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[code]
	if !ok || e.armed {
		return false
	}
	e.armed = true
	return true
}

// SetStatus records the booking's terminal status once the confirmation fires.
func (s *Store) SetStatus(code string, status models.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[code]; ok {
		e.record.Status = status
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
