package services

import (
	"context"

	"moviehub-be/internal/models"
	"moviehub-be/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovieService handles the admin movie catalog.
type MovieService struct {
	movies repositories.MovieRepository
}

func NewMovieService(movies repositories.MovieRepository) *MovieService {
	return &MovieService{movies: movies}
}

func (s *MovieService) Create(ctx context.Context, movie *models.Movie) (string, error) {
	return s.movies.Create(ctx, movie)
}

func (s *MovieService) GetAll(ctx context.Context) ([]models.Movie, error) {
	return s.movies.FindAll(ctx)
}

func (s *MovieService) ByID(ctx context.Context, id string) (*models.Movie, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	movie, err := s.movies.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}
