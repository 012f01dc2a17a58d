package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository using MongoDB.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new profile repository. It expects a
// connected *mongo.Database instance.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Create inserts a new profile. The username is the external identity key
// and must be unique; duplicates map to repository.ErrDuplicate.
func (r *mongoProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	if profile.Username == "" {
		return errors.New("profile username is required")
	}

	profile.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByUsername retrieves a profile by its unique username.
func (r *mongoProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	filter := bson.M{"username": username}

	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateFields performs a field-level $set on the named profile.
func (r *mongoProfileRepository) UpdateFields(ctx context.Context, username string, fields map[string]any) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		if key == "username" || key == "_id" {
			continue // Identity fields are immutable.
		}
		set[key] = value
	}

	filter := bson.M{"username": username}
	update := bson.M{"$set": set}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureProfileIndexes creates necessary indexes for the profiles
// collection. Call this once during application startup.
func EnsureProfileIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
