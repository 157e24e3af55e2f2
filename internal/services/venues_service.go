package services

import (
	"context"
	"fmt"

	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VenuesService struct {
	venueRepo models.VenueRepo
}

func NewVenuesService(venueRepo models.VenueRepo) *VenuesService {
	return &VenuesService{
		venueRepo: venueRepo,
	}
}

// venueUpdateFields is the whitelist for partial updates.
var venueUpdateFields = map[string]bool{
	"name":        true,
	"location":    true,
	"capacity":    true,
	"price":       true,
	"description": true,
	"images":      true,
}

func parseVenueID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid venue id", models.ErrValidation)
	}
	return oid, nil
}

func (vs *VenuesService) List(ctx context.Context) ([]models.Venue, error) {
	return vs.venueRepo.ListVenues(ctx, models.VenueQuery{})
}

func (vs *VenuesService) Filter(ctx context.Context, q models.VenueQuery) ([]models.Venue, error) {
	if q.PriceSort != "" && q.PriceSort != "low" && q.PriceSort != "high" {
		return nil, fmt.Errorf("%w: price must be 'low' or 'high'", models.ErrValidation)
	}
	if q.MinCapacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", models.ErrValidation)
	}
	return vs.venueRepo.ListVenues(ctx, q)
}

func (vs *VenuesService) Get(ctx context.Context, id string) (*models.Venue, error) {
	oid, err := parseVenueID(id)
	if err != nil {
		return nil, err
	}
	return vs.venueRepo.GetVenueByID(ctx, oid)
}

func (vs *VenuesService) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := models.Validate.Struct(venue); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return vs.venueRepo.CreateVenue(ctx, venue)
}

func (vs *VenuesService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Venue, error) {
	oid, err := parseVenueID(id)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}
	for key, value := range fields {
		if !venueUpdateFields[key] {
			continue
		}
		set[key] = value
	}

	if capacity, ok := set["capacity"]; ok {
		// JSON numbers decode as float64
		n, ok := capacity.(float64)
		if !ok || n <= 0 || n != float64(int(n)) {
			return nil, fmt.Errorf("%w: capacity must be a positive integer", models.ErrValidation)
		}
		set["capacity"] = int(n)
	}
	if price, ok := set["price"]; ok {
		n, ok := price.(float64)
		if !ok || n < 0 {
			return nil, fmt.Errorf("%w: price must be a non-negative number", models.ErrValidation)
		}
	}

	return vs.venueRepo.UpdateVenue(ctx, oid, set)
}

func (vs *VenuesService) Delete(ctx context.Context, id string) error {
	oid, err := parseVenueID(id)
	if err != nil {
		return err
	}
	return vs.venueRepo.DeleteVenue(ctx, oid)
}
