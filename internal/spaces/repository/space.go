package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	spaceserrors "ijuruhub/internal/spaces/errors"
	"ijuruhub/pkg/config"
	"ijuruhub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Spaces"

// SpaceRepository is the persistence contract for the space registry.
// Occupy and Vacate are atomic conditional updates: the status predicate is
// part of the storage-level filter, so two concurrent occupy calls cannot
// both succeed.
type SpaceRepository interface {
	SeedIfEmpty(ctx context.Context) error
	Reset(ctx context.Context) error
	Get(ctx context.Context, id string) (*model.Space, error)
	ListAll(ctx context.Context) ([]*model.Space, error)
	ListByType(ctx context.Context, spaceType string) ([]*model.Space, error)
	Occupy(ctx context.Context, id, occupantName, occupantPhone string) (*model.Space, error)
	Vacate(ctx context.Context, id string) (*model.Space, error)
}

type mongoSpaceRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoSpaceRepository(cfg *config.Config) SpaceRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSpaceRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// SeedIfEmpty populates the registry with the default catalog when it holds
// zero records. A non-empty registry is left untouched.
func (r *mongoSpaceRepository) SeedIfEmpty(ctx context.Context) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count spaces: %w", err)
	}
	if count > 0 {
		return nil
	}
	return r.insertCatalog(ctx)
}

// Reset drops every space record and re-seeds unconditionally.
func (r *mongoSpaceRepository) Reset(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete spaces: %w", err)
	}
	return r.insertCatalog(ctx)
}

func (r *mongoSpaceRepository) insertCatalog(ctx context.Context) error {
	now := time.Now().UTC()
	catalog := DefaultCatalog()
	docs := make([]any, 0, len(catalog))
	for _, space := range catalog {
		space.CreatedAt = now
		space.UpdatedAt = now
		docs = append(docs, space)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed spaces: %w", err)
	}
	return nil
}

func (r *mongoSpaceRepository) Get(ctx context.Context, id string) (*model.Space, error) {
	var space model.Space
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&space)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, spaceserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find space: %w", err)
	}
	return &space, nil
}

func (r *mongoSpaceRepository) ListAll(ctx context.Context) ([]*model.Space, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoSpaceRepository) ListByType(ctx context.Context, spaceType string) ([]*model.Space, error) {
	return r.list(ctx, bson.M{"type": spaceType})
}

func (r *mongoSpaceRepository) list(ctx context.Context, filter bson.M) ([]*model.Space, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find spaces: %w", err)
	}
	defer cursor.Close(ctx)

	var spaces []*model.Space
	if err := cursor.All(ctx, &spaces); err != nil {
		return nil, fmt.Errorf("failed to decode spaces: %w", err)
	}
	return spaces, nil
}

// Occupy transitions id from available to occupied in a single conditional
// update. The returned document is the post-update state.
func (r *mongoSpaceRepository) Occupy(ctx context.Context, id, occupantName, occupantPhone string) (*model.Space, error) {
	now := time.Now().UTC()
	filter := bson.M{"id": id, "status": model.SpaceStatusAvailable}
	update := bson.M{"$set": bson.M{
		"status":     model.SpaceStatusOccupied,
		"occupant":   bson.M{"name": occupantName, "phone": occupantPhone},
		"occupiedAt": now,
		"vacatedAt":  nil,
		"updatedAt":  now,
	}}

	return r.conditionalUpdate(ctx, id, filter, update, spaceserrors.ErrAlreadyOccupied)
}

// Vacate transitions id from occupied to available, clearing the occupant.
func (r *mongoSpaceRepository) Vacate(ctx context.Context, id string) (*model.Space, error) {
	now := time.Now().UTC()
	filter := bson.M{"id": id, "status": model.SpaceStatusOccupied}
	update := bson.M{"$set": bson.M{
		"status":    model.SpaceStatusAvailable,
		"occupant":  nil,
		"vacatedAt": now,
		"updatedAt": now,
	}}

	return r.conditionalUpdate(ctx, id, filter, update, spaceserrors.ErrAlreadyAvailable)
}

// conditionalUpdate runs the compare-and-swap and disambiguates a miss: a
// follow-up read tells apart "unknown id" from "wrong status".
func (r *mongoSpaceRepository) conditionalUpdate(ctx context.Context, id string, filter, update bson.M, conflictErr error) (*model.Space, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var space model.Space
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&space)
	if err == nil {
		return &space, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update space: %w", err)
	}

	if _, getErr := r.Get(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, conflictErr
}
