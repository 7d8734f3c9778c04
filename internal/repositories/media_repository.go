package repositories

import (
	"context"
	"time"

	"github.com/anvers19/devfolio/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaRepository defines the interface for uploaded-file metadata
type MediaRepository interface {
	CreateMedia(ctx context.Context, media *models.Media) error
	GetMediaByUserID(ctx context.Context, userID string, skip, limit int64) ([]models.Media, error)
}

// MongoMediaRepository implements MediaRepository for MongoDB
type MongoMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoMediaRepository creates a new MongoMediaRepository
func NewMongoMediaRepository(db *mongo.Database) *MongoMediaRepository {
	return &MongoMediaRepository{collection: db.Collection("media")}
}

// CreateMedia records metadata for an uploaded file in MongoDB
func (r *MongoMediaRepository) CreateMedia(ctx context.Context, media *models.Media) error {
	media.ID = primitive.NewObjectID()
	media.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, media)
	return err
}

// GetMediaByUserID retrieves one user's uploads, newest first
func (r *MongoMediaRepository) GetMediaByUserID(ctx context.Context, userID string, skip, limit int64) ([]models.Media, error) {
	var media []models.Media
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}
