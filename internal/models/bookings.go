package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is one of the three known states.
// Any valid status may follow any other; there is deliberately no
// transition table.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingApproved, BookingCancelled:
		return true
	}
	return false
}

// Booking links a user to a venue for a date. Bookings are never deleted;
// cancellation is a status write.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	VenueID   primitive.ObjectID `bson:"venue" json:"venue"`
	Date      time.Time          `bson:"date" json:"date"`
	Status    BookingStatus      `bson:"status" json:"status"`
	Guests    int                `bson:"guests" json:"guests"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}

// BookingVenueInfo and BookingUserInfo are the display fields joined onto a
// booking when listing, mirroring what clients render in booking tables.
type BookingVenueInfo struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Location string             `bson:"location" json:"location"`
	Price    float64            `bson:"price" json:"price"`
}

type BookingUserInfo struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

// BookingDetail is a booking expanded with its referenced venue and user.
type BookingDetail struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Venue     BookingVenueInfo   `bson:"venue" json:"venue"`
	User      BookingUserInfo    `bson:"user" json:"user"`
	Date      time.Time          `bson:"date" json:"date"`
	Status    BookingStatus      `bson:"status" json:"status"`
	Guests    int                `bson:"guests" json:"guests"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
