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

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]BookingDetail, error)
	ListAllBookings(ctx context.Context) ([]BookingDetail, error)
	UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status BookingStatus) (*Booking, error)
	CancelOwnedBooking(ctx context.Context, userID, id primitive.ObjectID) (*Booking, error)
}

func (mdb *MongodbRepo) ensureBookingIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetName("bookings_by_user"),
	})
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %v", err)
	}
	return booking, nil
}

// bookingLookupPipeline joins the referenced venue and user onto each
// booking, keeping only their display fields. Equivalent to populate() on
// the two foreign references.
func bookingLookupPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         VenuesColName,
			"localField":   "venue",
			"foreignField": "_id",
			"as":           "venue",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$venue",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         UsersColName,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"date":           1,
			"status":         1,
			"guests":         1,
			"createdAt":      1,
			"updatedAt":      1,
			"venue._id":      1,
			"venue.name":     1,
			"venue.location": 1,
			"venue.price":    1,
			"user._id":       1,
			"user.name":      1,
			"user.email":     1,
		}}},
	}
}

func (mdb *MongodbRepo) listBookingDetails(ctx context.Context, match bson.M) ([]BookingDetail, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cur, err := col.Aggregate(ctx, bookingLookupPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings: %v", err)
	}
	defer cur.Close(ctx)

	bookings := []BookingDetail{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %v", err)
	}
	return bookings, nil
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]BookingDetail, error) {
	return mdb.listBookingDetails(ctx, bson.M{"user": userID})
}

func (mdb *MongodbRepo) ListAllBookings(ctx context.Context) ([]BookingDetail, error) {
	return mdb.listBookingDetails(ctx, bson.M{})
}

func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status BookingStatus) (*Booking, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var updated Booking
	err = col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %v", err)
	}
	return &updated, nil
}

// CancelOwnedBooking sets status to cancelled on a booking owned by userID.
// The ownership check lives in the filter, so a foreign booking id reports
// not found rather than forbidden.
func (mdb *MongodbRepo) CancelOwnedBooking(ctx context.Context, userID, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var updated Booking
	err = col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "user": userID},
		bson.M{"$set": bson.M{"status": BookingCancelled, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to cancel booking: %v", err)
	}
	return &updated, nil
}
