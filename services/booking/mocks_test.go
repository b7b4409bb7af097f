package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "yalasafari/database/repository/booking"
	"yalasafari/models"
)

// memRepo is an in-memory bookingRepo.Repository that mirrors the
// storage-level date exclusivity guarantee.
type memRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.SafariBooking
}

func newMemRepo() *memRepo {
	return &memRepo{bookings: make(map[string]*models.SafariBooking)}
}

func (r *memRepo) Create(ctx context.Context, b *models.SafariBooking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.Status.Active() && existing.Date.Equal(b.Date) {
			return bookingRepo.ErrDateTaken
		}
	}
	copied := *b
	now := time.Now()
	copied.CreatedAt = now
	copied.UpdatedAt = now
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*models.SafariBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memRepo) GetByReference(ctx context.Context, ref string) (*models.SafariBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Reference == ref {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *memRepo) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.SafariBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SafariBooking
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memRepo) Update(ctx context.Context, b *models.SafariBooking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	copied := *b
	copied.UpdatedAt = time.Now()
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *memRepo) FindActiveByDate(ctx context.Context, date time.Time) (*models.SafariBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	normalized := models.NormalizeDate(date)
	for _, b := range r.bookings {
		if b.Status.Active() && b.Date.Equal(normalized) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memRepo) ActiveDatesInRange(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var dates []time.Time
	for _, b := range r.bookings {
		if b.Status.Active() && !b.Date.Before(models.NormalizeDate(from)) && !b.Date.After(models.NormalizeDate(to)) {
			dates = append(dates, b.Date)
		}
	}
	return dates, nil
}

func (r *memRepo) Stats(ctx context.Context) (bookingRepo.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var stats bookingRepo.Stats
	for _, b := range r.bookings {
		stats.TotalBookings++
		if b.Status == models.BookingPending {
			stats.PendingBookings++
		}
		if b.Status == models.BookingCompleted {
			stats.CompletedRevenue += b.Prices.TotalPrice
		}
		switch b.VisitorType {
		case models.VisitorLocal:
			stats.LocalVisitors++
		case models.VisitorForeign:
			stats.ForeignVisitors++
		}
	}
	return stats, nil
}

// recordingNotifier records dispatched events for assertion. Dispatch
// happens on a goroutine, so reads go through Events/WaitFor.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) record(event string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

func (n *recordingNotifier) SafariBookingReceived(ctx context.Context, b *models.SafariBooking) error {
	n.record("received:" + b.Reference)
	return nil
}

func (n *recordingNotifier) SafariBookingConfirmed(ctx context.Context, b *models.SafariBooking) error {
	n.record("confirmed:" + b.Reference)
	return nil
}

func (n *recordingNotifier) SafariBookingRejected(ctx context.Context, b *models.SafariBooking, reason string) error {
	n.record("rejected:" + b.Reference + ":" + reason)
	return nil
}

func (n *recordingNotifier) RoomBookingReceived(ctx context.Context, b *models.RoomBooking, room *models.Room) error {
	n.record("room:" + b.Reference)
	return nil
}

func (n *recordingNotifier) TaxiBookingReceived(ctx context.Context, b *models.TaxiBooking, taxi *models.Taxi) error {
	n.record("taxi:" + b.Reference)
	return nil
}

func (n *recordingNotifier) ContactReceived(ctx context.Context, m *models.ContactMessage) error {
	n.record("contact:" + m.Email)
	return nil
}

// fixedPackages satisfies PackageSource with a static fixture.
type fixedPackages struct {
	pkg *models.Package
}

func (f *fixedPackages) ActivePackage(ctx context.Context) (*models.Package, error) {
	return f.pkg, nil
}

func newTestService(notifier *recordingNotifier) (*DefaultBookingService, *memRepo) {
	repo := newMemRepo()
	refCounter := 0
	svc := &DefaultBookingService{
		Repo:     repo,
		Packages: &fixedPackages{pkg: testPackage()},
		Notifier: notifier,
		NewReference: func() string {
			refCounter++
			return "YSF-TEST-" + string(rune('A'+refCounter-1))
		},
	}
	return svc, repo
}
