package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Eursukkul/humorshub/internal/models"
	"gorm.io/gorm"
)

// --- In-memory BookingRepository ---

type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]*models.Booking
	err      error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uint]*models.Booking{}}
}

// seed stores a booking with the given seats and status and returns its id.
func (r *fakeBookingRepo) seed(email string, seats int, status models.Status) uint {
	n := seats
	b := &models.Booking{UserEmail: email, FullName: "Guest", Phone: "0800000000", NumberOfTickets: &n, Status: status}
	_ = r.Create(context.Background(), b)
	return b.ID
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = time.Now()
	cp := *booking
	r.bookings[cp.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) FindByEmail(_ context.Context, email string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return b.UserEmail == email }), nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context, status *models.Status) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return status == nil || b.Status == *status }), nil
}

func (r *fakeBookingRepo) filter(keep func(*models.Booking) bool) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeBookingRepo) SumApprovedSeats(_ context.Context, _ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var total int64
	for _, b := range r.bookings {
		if b.Status == models.StatusApproved {
			total += int64(b.Seats())
		}
	}
	return total, nil
}

func (r *fakeBookingRepo) UpdateStatusIfPending(_ context.Context, _ *gorm.DB, id uint, status models.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.StatusPending {
		return false, nil
	}
	b.Status = status
	return true, nil
}

func (r *fakeBookingRepo) DeleteIfPending(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.StatusPending {
		return false, nil
	}
	delete(r.bookings, id)
	return true, nil
}

func (r *fakeBookingRepo) CountByEmail(_ context.Context, _ *gorm.DB, email string) (int64, error) {
	return int64(len(r.filter(func(b *models.Booking) bool { return b.UserEmail == email }))), nil
}

func (r *fakeBookingRepo) DeleteByEmail(_ context.Context, _ *gorm.DB, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, b := range r.bookings {
		if b.UserEmail == email {
			delete(r.bookings, id)
			n++
		}
	}
	return n, nil
}

// --- In-memory VenueRepository ---

type fakeVenueRepo struct {
	venue  models.Venue
	locks  int
	lockMu sync.Mutex
}

func (r *fakeVenueRepo) Ensure(_ context.Context, venue *models.Venue) error {
	r.venue = *venue
	return nil
}

func (r *fakeVenueRepo) FindByID(_ context.Context, id uint) (*models.Venue, error) {
	if id != r.venue.ID {
		return nil, gorm.ErrRecordNotFound
	}
	v := r.venue
	return &v, nil
}

func (r *fakeVenueRepo) FindByIDForUpdate(ctx context.Context, _ *gorm.DB, id uint) (*models.Venue, error) {
	r.lockMu.Lock()
	r.locks++
	r.lockMu.Unlock()
	return r.FindByID(ctx, id)
}

// --- In-memory UserRepository ---

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) add(u models.User) *models.User {
	_ = r.Create(context.Background(), &u)
	return &u
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[cp.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) FindComedians(ctx context.Context, status *models.Status) ([]models.User, error) {
	all, _ := r.FindAll(ctx)
	var out []models.User
	for _, u := range all {
		if u.IsComedian && (status == nil || u.ComedianProfile.Status == *status) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpsertComedian(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	for _, u := range r.users {
		if u.Email == user.Email {
			u.IsComedian = true
			u.ComedianProfile = user.ComedianProfile
			r.mu.Unlock()
			return r.FindByID(ctx, u.ID)
		}
	}
	r.mu.Unlock()
	if err := r.Create(ctx, user); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, user.ID)
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id uint, username, phone, bio string) error {
	return r.update(id, func(u *models.User) {
		u.Username, u.Phone, u.Bio = username, phone, bio
	})
}

func (r *fakeUserRepo) UpdateComedianStatusIfPending(_ context.Context, id uint, status models.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || !u.IsComedian || u.ComedianProfile.Status != models.StatusPending {
		return false, nil
	}
	u.ComedianProfile.Status = status
	return true, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id uint, role models.Role) error {
	return r.update(id, func(u *models.User) { u.Role = role })
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uint, hash string) error {
	return r.update(id, func(u *models.User) { u.PasswordHash = hash })
}

func (r *fakeUserRepo) Delete(_ context.Context, _ *gorm.DB, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) update(id uint, fn func(*models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	fn(u)
	return nil
}

// --- Collaborators ---

// passthroughTx runs fn without a database. Calls are serialized so the
// in-memory repos see the same ordering a row lock would give.
type passthroughTx struct {
	mu sync.Mutex
}

func (t *passthroughTx) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(nil)
}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return p.err
}

type fakeCache struct {
	status      *models.VenueStatus
	sets        int
	invalidated int
}

func (c *fakeCache) Get(context.Context) (*models.VenueStatus, error) {
	return c.status, nil
}

func (c *fakeCache) Set(_ context.Context, status models.VenueStatus) error {
	c.sets++
	c.status = &status
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	c.status = nil
	return nil
}

var (
	adminID = Identity{UserID: 1, Email: "admin@humorshub.com", Role: models.RoleAdmin}
	aliceID = Identity{UserID: 2, Email: "alice@example.com", Role: models.RoleUser}
	bobID   = Identity{UserID: 3, Email: "bob@example.com", Role: models.RoleUser}
)

func intPtr(n int) *int { return &n }
