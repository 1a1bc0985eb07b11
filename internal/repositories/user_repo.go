package repositories

import (
	"context"

	"moviehub-be/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is the persistence contract for the users collection.
// Lookups for absent documents return (nil, nil), never a driver error.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindAll returns users sorted by creation time descending, password
	// projected out. A non-empty searchTerm filters by email,
	// case-insensitive.
	FindAll(ctx context.Context, searchTerm string) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *models.User) error
	UpdateFavorites(ctx context.Context, id primitive.ObjectID, favorites []primitive.ObjectID) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	// FindFavorites fetches only the favorites field of a user.
	FindFavorites(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}
