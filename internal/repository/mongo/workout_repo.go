package mongo

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Insert stores a completed session document.
func (r *mongoWorkoutRepository) Insert(ctx context.Context, session *domain.WorkoutSession) error {
	if session.Username == "" || session.ID == "" {
		return errors.New("workout session requires username and id")
	}

	session.DocID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

// GetAllByUser retrieves all sessions owned by a username, newest-first by
// creation date.
func (r *mongoWorkoutRepository) GetAllByUser(ctx context.Context, username string) ([]domain.WorkoutSession, error) {
	filter := bson.M{"username": username}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []domain.WorkoutSession{}
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Delete removes a session by its id, scoped to the owning username so one
// user can never delete another's history.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, username, sessionID string) error {
	filter := bson.M{"username": username, "id": sessionID}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// History queries: all sessions of a user, newest-first.
			Keys:    bson.D{{Key: "username", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
