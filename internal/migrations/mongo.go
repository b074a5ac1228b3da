// Package migrations creates the MongoDB indexes the API relies on. The
// unique booking reference index in particular backs the insert-and-retry
// reference generation, so it must exist before the server takes traffic.
package migrations

import (
	"context"
	"fmt"

	bookingrepo "ijuruhub/internal/bookings/repository"
	contactrepo "ijuruhub/internal/contacts/repository"
	spacerepo "ijuruhub/internal/spaces/repository"
	"ijuruhub/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func Run(ctx context.Context, cfg *config.Config) error {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)

	for _, step := range []struct {
		collection string
		indexes    []mongo.IndexModel
	}{
		{
			collection: spacerepo.CollectionName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "id", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("uniq_space_id"),
				},
				{
					Keys:    bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}},
					Options: options.Index().SetName("space_type_status"),
				},
			},
		},
		{
			collection: bookingrepo.CollectionName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "bookingReference", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("uniq_booking_reference"),
				},
				{
					Keys:    bson.D{{Key: "spaceId", Value: 1}, {Key: "status", Value: 1}},
					Options: options.Index().SetName("booking_space_status"),
				},
				{
					Keys:    bson.D{{Key: "status", Value: 1}, {Key: "paymentStatus", Value: 1}},
					Options: options.Index().SetName("booking_status_payment"),
				},
				{
					Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
					Options: options.Index().SetName("booking_date_time"),
				},
				{
					Keys:    bson.D{{Key: "createdAt", Value: -1}},
					Options: options.Index().SetName("booking_created_at"),
				},
			},
		},
		{
			collection: contactrepo.CollectionName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "createdAt", Value: -1}},
					Options: options.Index().SetName("contact_created_at"),
				},
			},
		},
	} {
		names, err := db.Collection(step.collection).Indexes().CreateMany(ctx, step.indexes)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", step.collection, err)
		}
		cfg.Log.Info("Indexes ensured", "collection", step.collection, "indexes", names)
	}

	return nil
}
