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

type movieMongoRepository struct {
	collection *mongo.Collection
}

// NewMovieMongoRepository creates a MovieRepository backed by the movies
// collection.
func NewMovieMongoRepository(m *db.Mongo) MovieRepository {
	return &movieMongoRepository{collection: m.Collection("movies")}
}

func (r *movieMongoRepository) Create(ctx context.Context, movie *models.Movie) (string, error) {
	movie.ID = primitive.NewObjectID()
	movie.CreatedAt = time.Now()
	if movie.Genres == nil {
		movie.Genres = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *movieMongoRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var movies []models.Movie
	if err := cur.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieMongoRepository) FindByIDsWithGenres(ctx context.Context, ids []primitive.ObjectID) ([]models.MovieWithGenres, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": ids}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "genres",
			"localField":   "genres",
			"foreignField": "_id",
			"as":           "genres",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.MovieWithGenres
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
