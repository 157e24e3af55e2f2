package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo models.BookingRepo
}

func NewBookingService(bookingRepo models.BookingRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
	}
}

type BookInput struct {
	Venue  string
	Date   string
	Guests int
}

// parseBookingDate accepts a full timestamp or a bare date.
func parseBookingDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: date must be RFC3339 or YYYY-MM-DD", models.ErrValidation)
}

// Book creates a pending booking owned by userID. Concurrent bookings for
// the same venue and date are accepted without conflict detection; venues
// are capacity-based and multi-tenant.
func (bs *BookingService) Book(ctx context.Context, userID string, in BookInput) (*models.Booking, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrValidation)
	}
	vid, err := primitive.ObjectIDFromHex(in.Venue)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid venue id", models.ErrValidation)
	}
	date, err := parseBookingDate(in.Date)
	if err != nil {
		return nil, err
	}

	guests := in.Guests
	if guests <= 0 {
		guests = 1
	}

	return bs.bookingRepo.CreateBooking(ctx, &models.Booking{
		UserID:  uid,
		VenueID: vid,
		Date:    date,
		Status:  models.BookingPending,
		Guests:  guests,
	})
}

func (bs *BookingService) ListMine(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrValidation)
	}
	return bs.bookingRepo.ListBookingsByUser(ctx, uid)
}

func (bs *BookingService) ListAll(ctx context.Context) ([]models.BookingDetail, error) {
	return bs.bookingRepo.ListAllBookings(ctx)
}

// SetStatus writes the new status unconditionally; any valid status may
// follow any other.
func (bs *BookingService) SetStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id", models.ErrValidation)
	}
	if !models.ValidBookingStatus(status) {
		return nil, fmt.Errorf("%w: status must be pending, approved or cancelled", models.ErrValidation)
	}
	return bs.bookingRepo.UpdateBookingStatus(ctx, oid, status)
}

// CancelMine cancels a booking owned by the caller. Cancelling an already
// cancelled booking succeeds as a no-op; a booking owned by someone else
// reports not found.
func (bs *BookingService) CancelMine(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrValidation)
	}
	oid, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id", models.ErrValidation)
	}
	return bs.bookingRepo.CancelOwnedBooking(ctx, uid, oid)
}
