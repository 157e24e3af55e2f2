package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Venue is a bookable resource. Name, location, capacity and price are
// mandatory; price carries no currency.
type Venue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Capacity    int                `bson:"capacity" json:"capacity" validate:"required,gt=0"`
	Price       float64            `bson:"price" json:"price" validate:"required,gte=0"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// VenueQuery carries the optional, independently composable list filters.
// The zero value is equivalent to "list everything".
type VenueQuery struct {
	Location    string
	MinCapacity int
	PriceSort   string // "low" ascending, "high" descending, "" unsorted
}

func (q VenueQuery) IsEmpty() bool {
	return q.Location == "" && q.MinCapacity == 0 && q.PriceSort == ""
}
