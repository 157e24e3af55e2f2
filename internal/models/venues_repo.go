package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VenueRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (*Venue, error)
	GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error)
	ListVenues(ctx context.Context, q VenueQuery) ([]Venue, error)
	UpdateVenue(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (*Venue, error)
	DeleteVenue(ctx context.Context, id primitive.ObjectID) error
}

// BuildVenueFilter translates a VenueQuery into a Mongo filter document.
// Location matches as a case-insensitive substring; capacity is "at least".
func BuildVenueFilter(q VenueQuery) bson.M {
	filter := bson.M{}
	if q.Location != "" {
		filter["location"] = bson.M{"$regex": q.Location, "$options": "i"}
	}
	if q.MinCapacity > 0 {
		filter["capacity"] = bson.M{"$gte": q.MinCapacity}
	}
	return filter
}

// BuildVenueSort returns the sort document for a price sort request, or nil
// when no sort was asked for.
func BuildVenueSort(priceSort string) bson.D {
	switch priceSort {
	case "low":
		return bson.D{{Key: "price", Value: 1}}
	case "high":
		return bson.D{{Key: "price", Value: -1}}
	}
	return nil
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (*Venue, error) {
	col, err := mdb.GetCollection(VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if venue.ID.IsZero() {
		venue.ID = primitive.NewObjectID()
	}
	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if _, err := col.InsertOne(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to insert venue: %v", err)
	}
	return venue, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error) {
	col, err := mdb.GetCollection(VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var venue Venue
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get venue by ID: %v", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context, q VenueQuery) ([]Venue, error) {
	col, err := mdb.GetCollection(VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find()
	if sort := BuildVenueSort(q.PriceSort); sort != nil {
		opts.SetSort(sort)
	}

	cur, err := col.Find(ctx, BuildVenueFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %v", err)
	}
	defer cur.Close(ctx)

	venues := []Venue{}
	if err := cur.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %v", err)
	}
	return venues, nil
}

func (mdb *MongodbRepo) UpdateVenue(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (*Venue, error) {
	if len(set) == 0 {
		return mdb.GetVenueByID(ctx, id)
	}

	col, err := mdb.GetCollection(VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set["updatedAt"] = time.Now()

	var updated Venue
	err = col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update venue: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(VenuesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete venue: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
