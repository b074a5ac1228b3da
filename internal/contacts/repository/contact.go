package repository

import (
	"context"
	"fmt"

	"ijuruhub/pkg/config"
	"ijuruhub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Contacts"

type ContactRepository interface {
	Insert(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	FindRecent(ctx context.Context, limit int) ([]*model.Contact, error)
}

type mongoContactRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoContactRepository(cfg *config.Config) ContactRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoContactRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoContactRepository) Insert(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	result, err := r.collection.InsertOne(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid.Hex()
	}
	return contact, nil
}

func (r *mongoContactRepository) FindRecent(ctx context.Context, limit int) ([]*model.Contact, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []*model.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
