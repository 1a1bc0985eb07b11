package repositories

import (
	"context"
	"time"

	"moviehub-be/internal/db"
	"moviehub-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type genreMongoRepository struct {
	collection *mongo.Collection
}

// NewGenreMongoRepository creates a GenreRepository backed by the genres
// collection.
func NewGenreMongoRepository(m *db.Mongo) GenreRepository {
	return &genreMongoRepository{collection: m.Collection("genres")}
}

func (r *genreMongoRepository) Create(ctx context.Context, genre *models.Genre) (string, error) {
	genre.ID = primitive.NewObjectID()
	genre.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, genre)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *genreMongoRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cur, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var genres []models.Genre
	if err := cur.All(ctx, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *genreMongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
