package services

import (
	"context"

	"moviehub-be/internal/hash"
	"moviehub-be/internal/models"
	"moviehub-be/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService owns all reads and writes against the users collection.
type UserService struct {
	users  repositories.UserRepository
	movies repositories.MovieRepository
	hasher hash.PasswordHasher
}

func NewUserService(users repositories.UserRepository, movies repositories.MovieRepository, hasher hash.PasswordHasher) *UserService {
	return &UserService{
		users:  users,
		movies: movies,
		hasher: hasher,
	}
}

// ByID looks up a user by its hex identifier.
func (s *UserService) ByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	user, err := s.users.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial update to the target user. Only fields
// present in dto change. Promoting a non-admin requires isAdminOverride;
// an existing admin can have the flag toggled without it.
func (s *UserService) UpdateProfile(ctx context.Context, id string, dto *models.UserUpdate, isAdminOverride bool) error {
	user, err := s.ByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.Email != nil {
		other, err := s.users.FindByEmail(ctx, *dto.Email)
		if err != nil {
			return err
		}
		if other != nil && other.ID.Hex() != user.ID.Hex() {
			return ErrEmailTaken
		}
		user.Email = *dto.Email
	}

	if dto.Password != nil {
		hashed, err := s.hasher.Hash(*dto.Password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	if dto.IsAdmin != nil && (user.IsAdmin || isAdminOverride) {
		user.IsAdmin = *dto.IsAdmin
	}

	return s.users.Update(ctx, user)
}

// Count returns the total number of users.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

// GetAll lists users newest-first, optionally filtered by email search
// term. Passwords are never included.
func (s *UserService) GetAll(ctx context.Context, searchTerm string) ([]models.User, error) {
	return s.users.FindAll(ctx, searchTerm)
}

// Delete removes a user by id. Deleting an absent id is not an error.
func (s *UserService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.users.DeleteByID(ctx, objID)
}

// ToggleFavorites removes movieID from the user's favorites if present,
// otherwise appends it. Comparison is by hex value, not instance.
func (s *UserService) ToggleFavorites(ctx context.Context, movieID primitive.ObjectID, user *models.User) error {
	favorites := user.Favorites

	present := false
	for _, id := range favorites {
		if id.Hex() == movieID.Hex() {
			present = true
			break
		}
	}

	if present {
		kept := make([]primitive.ObjectID, 0, len(favorites))
		for _, id := range favorites {
			if id.Hex() != movieID.Hex() {
				kept = append(kept, id)
			}
		}
		favorites = kept
	} else {
		favorites = append(favorites, movieID)
	}

	return s.users.UpdateFavorites(ctx, user.ID, favorites)
}

// FavoriteMovies returns the user's favorite movies with genres expanded,
// in favorites order.
func (s *UserService) FavoriteMovies(ctx context.Context, id string) ([]models.MovieWithGenres, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	user, err := s.users.FindFavorites(ctx, objID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if len(user.Favorites) == 0 {
		return []models.MovieWithGenres{}, nil
	}

	movies, err := s.movies.FindByIDsWithGenres(ctx, user.Favorites)
	if err != nil {
		return nil, err
	}

	// $in does not preserve order; restore the favorites sequence.
	byID := make(map[string]models.MovieWithGenres, len(movies))
	for _, m := range movies {
		byID[m.ID.Hex()] = m
	}

	ordered := make([]models.MovieWithGenres, 0, len(movies))
	for _, favID := range user.Favorites {
		if m, ok := byID[favID.Hex()]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered, nil
}
