// Package memory holds map-backed repositories used for local runs without
// Postgres (DB_DRIVER=memory) and as test doubles. One mutex serializes every
// operation; Atomic snapshots the maps and restores them when fn fails.
package memory

import (
	"maps"
	"sync"
	"time"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type Store struct {
	mu sync.Mutex

	dresses  map[uint]models.Dress
	bookings map[uint]models.Booking
	logs     []models.SystemLog

	nextDressID   uint
	nextBookingID uint
	nextLogID     uint

	// Clock stamps created_at / updated_at. Tests may replace it.
	Clock func() time.Time
}

func NewStore() *Store {
	return &Store{
		dresses:  map[uint]models.Dress{},
		bookings: map[uint]models.Booking{},
		Clock:    time.Now,
	}
}

type snapshot struct {
	dresses       map[uint]models.Dress
	bookings      map[uint]models.Booking
	logs          []models.SystemLog
	nextDressID   uint
	nextBookingID uint
	nextLogID     uint
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		dresses:       maps.Clone(s.dresses),
		bookings:      maps.Clone(s.bookings),
		logs:          append([]models.SystemLog(nil), s.logs...),
		nextDressID:   s.nextDressID,
		nextBookingID: s.nextBookingID,
		nextLogID:     s.nextLogID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.dresses = snap.dresses
	s.bookings = snap.bookings
	s.logs = snap.logs
	s.nextDressID = snap.nextDressID
	s.nextBookingID = snap.nextBookingID
	s.nextLogID = snap.nextLogID
}

// atomic runs fn under the store lock and rolls back on error.
func (s *Store) atomic(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// txState is embedded by every repository. Outside a transaction each call
// takes the store lock; inside Atomic the lock is already held.
type txState struct {
	s    *Store
	inTx bool
}

func (t txState) lock() func() {
	if t.inTx {
		return func() {}
	}
	t.s.mu.Lock()
	return t.s.mu.Unlock
}

func (s *Store) withDress(b models.Booking) models.Booking {
	b.Dress = nil
	if b.DressID != nil {
		if d, ok := s.dresses[*b.DressID]; ok {
			d.ImageData = nil
			b.Dress = &d
		}
	}
	return b
}
