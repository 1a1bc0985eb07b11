package repositories

import (
	"context"

	"moviehub-be/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovieRepository is the persistence contract for the movies collection.
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) (string, error)
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	// FindByIDsWithGenres returns the movies matching ids with their genre
	// references expanded. Order is not guaranteed.
	FindByIDsWithGenres(ctx context.Context, ids []primitive.ObjectID) ([]models.MovieWithGenres, error)
}

// GenreRepository is the persistence contract for the genres collection.
type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) (string, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
