package services

import (
	"context"
	"strings"

	"moviehub-be/internal/models"
	"moviehub-be/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenreService handles the admin genre catalog.
type GenreService struct {
	genres repositories.GenreRepository
}

func NewGenreService(genres repositories.GenreRepository) *GenreService {
	return &GenreService{genres: genres}
}

func (s *GenreService) Create(ctx context.Context, genre *models.Genre) (string, error) {
	if genre.Slug == "" {
		genre.Slug = strings.ToLower(strings.ReplaceAll(genre.Name, " ", "-"))
	}
	return s.genres.Create(ctx, genre)
}

func (s *GenreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *GenreService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.genres.DeleteByID(ctx, objID)
}
