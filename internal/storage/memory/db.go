package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mbeaudet/rendezvous/internal/logger"
	"github.com/mbeaudet/rendezvous/internal/wizard"
)

type Config struct {
	L *logger.Logger
	// NewWizard builds a fresh wizard for a previously unseen session key.
	NewWizard func() *wizard.Wizard
}

// Store keeps one wizard draft per session key and records the booking
// requests the engine hands over on submit. It doubles as the default
// submission sink.
type Store struct {
	mu        sync.Mutex
	l         *logger.Logger
	newWizard func() *wizard.Wizard
	sessions  map[string]*wizard.Wizard
	bookings  map[string]*wizard.BookingRequest
}

func New(conf Config) *Store {
	return &Store{
		l:         conf.L,
		newWizard: conf.NewWizard,
		sessions:  make(map[string]*wizard.Wizard),
		bookings:  make(map[string]*wizard.BookingRequest),
	}
}

// Session returns the wizard bound to the session key carried by ctx,
// creating it on first use.
func (s *Store) Session(ctx context.Context) (*wizard.Wizard, error) {
	key, ok := wizard.SessionKeyFromContext(ctx)
	if !ok || key == "" {
		return nil, ErrSessionKeyNotFoundInCtx
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, exists := s.sessions[key]
	if !exists {
		w = s.newWizard()
		s.sessions[key] = w

		s.l.LogDebug("session %q created", key)
	}

	return w, nil
}

// SessionCount reports the number of live wizard sessions.
func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Submit implements wizard.Sink: it records the finished booking request.
func (s *Store) Submit(_ context.Context, req *wizard.BookingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[req.ID]; exists {
		return fmt.Errorf("booking %v: %w", req.ID, ErrDuplicateBooking)
	}

	s.bookings[req.ID] = req

	return nil
}

// Booking looks up a recorded booking request by id.
func (s *Store) Booking(id string) (*wizard.BookingRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, exists := s.bookings[id]

	return req, exists
}

// Bookings returns all recorded booking requests ordered by creation time.
func (s *Store) Bookings() []*wizard.BookingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*wizard.BookingRequest, 0, len(s.bookings))
	for _, req := range s.bookings {
		all = append(all, req)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	return all
}
