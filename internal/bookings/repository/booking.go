package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	bookingserrors "ijuruhub/internal/bookings/errors"
	"ijuruhub/pkg/config"
	"ijuruhub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Bookings"

// BookingRepository is the persistence contract for the booking ledger.
type BookingRepository interface {
	Insert(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindByReference(ctx context.Context, reference string) (*model.Booking, error)
	Find(ctx context.Context, filter *model.BookingFilter, page, limit int) ([]*model.Booking, int64, error)
	FindByDateRange(ctx context.Context, start, end time.Time, status, spaceType string) ([]*model.Booking, error)
	FindAll(ctx context.Context) ([]*model.Booking, error)
	FindActiveBySpace(ctx context.Context, spaceID string) (*model.Booking, error)
	FindManyByIDs(ctx context.Context, ids []string) ([]*model.Booking, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	UpdateMany(ctx context.Context, ids []string, updates *model.BookingUpdate) (int64, error)
	Delete(ctx context.Context, id string) error
}

type mongoBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// Insert stores a new booking and returns it with the generated ID. A unique
// index on bookingReference turns reference collisions into
// ErrDuplicateReference so the caller can regenerate and retry.
func (r *mongoBookingRepository) Insert(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, bookingserrors.ErrDuplicateReference
		}
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	}
	return booking, nil
}

func (r *mongoBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, bookingserrors.ErrInvalidID
	}

	var booking model.Booking
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

func (r *mongoBookingRepository) FindByReference(ctx context.Context, reference string) (*model.Booking, error) {
	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"bookingReference": reference}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by reference: %w", err)
	}
	return &booking, nil
}

// Find returns one page of bookings, newest first, plus the total count of
// documents matching the filter.
func (r *mongoBookingRepository) Find(ctx context.Context, filter *model.BookingFilter, page, limit int) ([]*model.Booking, int64, error) {
	query := buildFilterQuery(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	bookings, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// FindByDateRange returns bookings whose date falls within [start, end],
// ordered by date then time. The result is capped to keep calendar-style
// queries bounded.
func (r *mongoBookingRepository) FindByDateRange(ctx context.Context, start, end time.Time, status, spaceType string) ([]*model.Booking, error) {
	query := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	if status != "" && status != model.FilterAll {
		query["status"] = status
	}
	if spaceType != "" {
		query["spaceType"] = spaceType
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}).
		SetLimit(int64(config.DateRangeResultCap))

	return r.find(ctx, query, opts)
}

func (r *mongoBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

// FindActiveBySpace returns the pending or confirmed booking holding spaceID,
// or ErrNotFound when the space has no active claim.
func (r *mongoBookingRepository) FindActiveBySpace(ctx context.Context, spaceID string) (*model.Booking, error) {
	query := bson.M{
		"spaceId": spaceID,
		"status":  bson.M{"$in": []string{model.BookingStatusPending, model.BookingStatusConfirmed}},
	}

	var booking model.Booking
	err := r.collection.FindOne(ctx, query, options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active booking: %w", err)
	}
	return &booking, nil
}

func (r *mongoBookingRepository) FindManyByIDs(ctx context.Context, ids []string) ([]*model.Booking, error) {
	oids, err := toObjectIDs(ids)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find())
}

// Update applies the non-empty fields of updates and returns the post-update
// document.
func (r *mongoBookingRepository) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, bookingserrors.ErrInvalidID
	}

	set := buildUpdateDoc(updates)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking model.Booking
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &booking, nil
}

func (r *mongoBookingRepository) UpdateMany(ctx context.Context, ids []string, updates *model.BookingUpdate) (int64, error) {
	oids, err := toObjectIDs(ids)
	if err != nil {
		return 0, err
	}

	set := buildUpdateDoc(updates)
	result, err := r.collection.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": oids}}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("failed to update bookings: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *mongoBookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bookingserrors.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return bookingserrors.ErrNotFound
	}
	return nil
}

func (r *mongoBookingRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*model.Booking, error) {
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func buildFilterQuery(filter *model.BookingFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if filter.Status != "" && filter.Status != model.FilterAll {
		query["status"] = filter.Status
	}
	if filter.PaymentStatus != "" && filter.PaymentStatus != model.FilterAll {
		query["paymentStatus"] = filter.PaymentStatus
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
			bson.M{"bookingReference": pattern},
			bson.M{"spaceName": pattern},
		}
	}
	return query
}

func buildUpdateDoc(updates *model.BookingUpdate) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if updates == nil {
		return set
	}

	if updates.Status != "" {
		set["status"] = updates.Status
	}
	if updates.PaymentStatus != "" {
		set["paymentStatus"] = updates.PaymentStatus
	}
	if updates.Date != nil {
		set["date"] = *updates.Date
	}
	if updates.Time != "" {
		set["time"] = updates.Time
	}
	if updates.Duration != nil {
		set["duration"] = *updates.Duration
	}
	if updates.Price != "" {
		set["price"] = updates.Price
	}
	if updates.Message != "" {
		set["message"] = updates.Message
	}
	if updates.CancellationReason != "" {
		set["cancellationReason"] = updates.CancellationReason
	}
	if updates.CancelledAt != nil {
		set["cancelledAt"] = *updates.CancelledAt
	}
	return set
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, bookingserrors.ErrInvalidID
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
