package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repo fakes backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, models.ErrConflict
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	f.users = append(f.users, &cp)
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, id primitive.ObjectID, set map[string]interface{}) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID != id {
			continue
		}
		for key, value := range set {
			s, _ := value.(string)
			switch key {
			case "name":
				u.Name = s
			case "password":
				u.Password = s
			case "phone":
				u.Phone = s
			case "address":
				u.Address = s
			case "profileImage":
				u.ProfileImage = s
			}
		}
		u.UpdatedAt = time.Now()
		cp := *u
		return &cp, nil
	}
	return nil, models.ErrNotFound
}

type fakeVenueRepo struct {
	mu     sync.Mutex
	venues []*models.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{}
}

func (f *fakeVenueRepo) CreateVenue(_ context.Context, venue *models.Venue) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if venue.ID.IsZero() {
		venue.ID = primitive.NewObjectID()
	}
	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now
	cp := *venue
	f.venues = append(f.venues, &cp)
	return venue, nil
}

func (f *fakeVenueRepo) GetVenueByID(_ context.Context, id primitive.ObjectID) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.venues {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeVenueRepo) ListVenues(_ context.Context, q models.VenueQuery) ([]models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Venue{}
	for _, v := range f.venues {
		if q.Location != "" && !strings.Contains(strings.ToLower(v.Location), strings.ToLower(q.Location)) {
			continue
		}
		if q.MinCapacity > 0 && v.Capacity < q.MinCapacity {
			continue
		}
		out = append(out, *v)
	}
	switch q.PriceSort {
	case "low":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "high":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out, nil
}

func (f *fakeVenueRepo) UpdateVenue(_ context.Context, id primitive.ObjectID, set map[string]interface{}) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.venues {
		if v.ID != id {
			continue
		}
		for key, value := range set {
			switch key {
			case "name":
				v.Name, _ = value.(string)
			case "location":
				v.Location, _ = value.(string)
			case "description":
				v.Description, _ = value.(string)
			case "capacity":
				if n, ok := value.(int); ok {
					v.Capacity = n
				}
			case "price":
				if n, ok := value.(float64); ok {
					v.Price = n
				}
			}
		}
		v.UpdatedAt = time.Now()
		cp := *v
		return &cp, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeVenueRepo) DeleteVenue(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, v := range f.venues {
		if v.ID == id {
			f.venues = append(f.venues[:i], f.venues[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
	users    *fakeUserRepo
	venues   *fakeVenueRepo
}

func newFakeBookingRepo(users *fakeUserRepo, venues *fakeVenueRepo) *fakeBookingRepo {
	return &fakeBookingRepo{users: users, venues: venues}
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	cp := *booking
	f.bookings = append(f.bookings, &cp)
	return booking, nil
}

func (f *fakeBookingRepo) detail(ctx context.Context, b *models.Booking) models.BookingDetail {
	d := models.BookingDetail{
		ID:        b.ID,
		Date:      b.Date,
		Status:    b.Status,
		Guests:    b.Guests,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if venue, err := f.venues.GetVenueByID(ctx, b.VenueID); err == nil {
		d.Venue = models.BookingVenueInfo{ID: venue.ID, Name: venue.Name, Location: venue.Location, Price: venue.Price}
	}
	if user, err := f.users.GetUserByID(ctx, b.UserID); err == nil {
		d.User = models.BookingUserInfo{ID: user.ID, Name: user.Name, Email: user.Email}
	}
	return d
}

func (f *fakeBookingRepo) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.BookingDetail{}
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, f.detail(ctx, b))
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAllBookings(ctx context.Context) ([]models.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.BookingDetail{}
	for _, b := range f.bookings {
		out = append(out, f.detail(ctx, b))
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(_ context.Context, id primitive.ObjectID, status models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			b.UpdatedAt = time.Now()
			cp := *b
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeBookingRepo) CancelOwnedBooking(_ context.Context, userID, id primitive.ObjectID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id && b.UserID == userID {
			b.Status = models.BookingCancelled
			b.UpdatedAt = time.Now()
			cp := *b
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}
