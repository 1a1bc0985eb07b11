package repositories

import (
	"context"

	"moviehub-be/internal/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockMovieRepository is a mock implementation of MovieRepository for tests.
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *models.Movie) (string, error) {
	args := m.Called(ctx, movie)
	return args.String(0), args.Error(1)
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindByIDsWithGenres(ctx context.Context, ids []primitive.ObjectID) ([]models.MovieWithGenres, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MovieWithGenres), args.Error(1)
}

// MockGenreRepository is a mock implementation of GenreRepository for tests.
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) Create(ctx context.Context, genre *models.Genre) (string, error) {
	args := m.Called(ctx, genre)
	return args.String(0), args.Error(1)
}

func (m *MockGenreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
