package services_test

import (
	"context"
	"testing"
	"time"

	"moviehub-be/internal/models"
	"moviehub-be/internal/repositories"
	"moviehub-be/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubHasher is a deterministic PasswordHasher for tests.
type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (stubHasher) Compare(hashed, plaintext string) error {
	if hashed != "hashed:"+plaintext {
		return assert.AnError
	}
	return nil
}

func newUserService(users *repositories.MockUserRepository, movies *repositories.MockMovieRepository) *services.UserService {
	return services.NewUserService(users, movies, stubHasher{})
}

func TestUserService_ByID(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	mockMovies := new(repositories.MockMovieRepository)
	svc := newUserService(mockUsers, mockMovies)

	id := primitive.NewObjectID()
	user := &models.User{ID: id, Email: "alice@example.com"}

	mockUsers.On("FindByID", mock.Anything, id).Return(user, nil).Once()
	got, err := svc.ByID(context.Background(), id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, user, got)

	// Absent user
	missing := primitive.NewObjectID()
	mockUsers.On("FindByID", mock.Anything, missing).Return(nil, nil).Once()
	_, err = svc.ByID(context.Background(), missing.Hex())
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	// Malformed identifier
	_, err = svc.ByID(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, services.ErrInvalidID)

	mockUsers.AssertExpectations(t)
}

func TestUserService_UpdateProfile_PasswordOnly(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	mockMovies := new(repositories.MockMovieRepository)
	svc := newUserService(mockUsers, mockMovies)

	id := primitive.NewObjectID()
	user := &models.User{ID: id, Email: "alice@example.com", Password: "hashed:old", IsAdmin: false}

	mockUsers.On("FindByID", mock.Anything, id).Return(user, nil).Once()
	mockUsers.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Password == "hashed:newpass" &&
			u.Email == "alice@example.com" &&
			!u.IsAdmin
	})).Return(nil).Once()

	password := "newpass"
	err := svc.UpdateProfile(context.Background(), id.Hex(), &models.UserUpdate{Password: &password}, false)
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
	mockUsers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_EmailConflict(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	mockMovies := new(repositories.MockMovieRepository)
	svc := newUserService(mockUsers, mockMovies)

	id := primitive.NewObjectID()
	user := &models.User{ID: id, Email: "alice@example.com"}
	other := &models.User{ID: primitive.NewObjectID(), Email: "bob@example.com"}

	mockUsers.On("FindByID", mock.Anything, id).Return(user, nil).Once()
	mockUsers.On("FindByEmail", mock.Anything, "bob@example.com").Return(other, nil).Once()

	email := "bob@example.com"
	err := svc.UpdateProfile(context.Background(), id.Hex(), &models.UserUpdate{Email: &email}, false)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUsers.AssertExpectations(t)
}

func TestUserService_UpdateProfile_OwnEmailIsExempt(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	mockMovies := new(repositories.MockMovieRepository)
	svc := newUserService(mockUsers, mockMovies)

	id := primitive.NewObjectID()
	user := &models.User{ID: id, Email: "alice@example.com"}

	mockUsers.On("FindByID", mock.Anything, id).Return(user, nil).Once()
	// The email lookup finds the target itself: same document, no conflict.
	mockUsers.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil).Once()
	mockUsers.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

	email := "alice@example.com"
	err := svc.UpdateProfile(context.Background(), id.Hex(), &models.UserUpdate{Email: &email}, false)
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestUserService_UpdateProfile_AdminGuard(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name         string
		targetAdmin  bool
		dtoIsAdmin   *bool
		override     bool
		wantIsAdmin  bool
	}{
		{"non-admin cannot self-promote", false, boolPtr(true), false, false},
		{"override promotes non-admin", false, boolPtr(true), true, true},
		{"existing admin can be demoted without override", true, boolPtr(false), false, false},
		{"flag absent leaves admin untouched", true, nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(repositories.MockUserRepository)
			mockMovies := new(repositories.MockMovieRepository)
			svc := newUserService(mockUsers, mockMovies)

			id := primitive.NewObjectID()
			user := &models.User{ID: id, Email: "alice@example.com", IsAdmin: tt.targetAdmin}

			mockUsers.On("FindByID", mock.Anything, id).Return(user, nil).Once()
			mockUsers.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
				return u.IsAdmin == tt.wantIsAdmin
			})).Return(nil).Once()

			err := svc.UpdateProfile(context.Background(), id.Hex(), &models.UserUpdate{IsAdmin: tt.dtoIsAdmin}, tt.override)
			assert.NoError(t, err)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestUserService_GetAll_PassesSearchTerm(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	mockMovies := new(repositories.MockMovieRepository)
	svc := newUserService(mockUsers, mockMovies)

	users := []models.User{
		{ID: primitive.NewObjectID(), Email: "bob@example.com", CreatedAt: time.Now()},
	}
	mockUsers.On("FindAll", mock.Anything, "bob").Return(users, nil).Once()

	got, err := svc.GetAll(context.Background(), "bob")
	assert.NoError(t, err)
	assert.Equal(t, users, got)
	mockUsers.AssertExpectations(t)
}

func TestUserService_Count(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	mockMovies := new(repositories.MockMovieRepository)
	svc := newUserService(mockUsers, mockMovies)

	mockUsers.On("Count", mock.Anything).Return(int64(42), nil).Once()

	count, err := svc.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
	mockUsers.AssertExpectations(t)
}

func TestUserService_Delete_AbsentIDIsNotAnError(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	mockMovies := new(repositories.MockMovieRepository)
	svc := newUserService(mockUsers, mockMovies)

	id := primitive.NewObjectID()
	mockUsers.On("DeleteByID", mock.Anything, id).Return(nil).Once()

	assert.NoError(t, svc.Delete(context.Background(), id.Hex()))
	assert.ErrorIs(t, svc.Delete(context.Background(), "bogus"), services.ErrInvalidID)
	mockUsers.AssertExpectations(t)
}

func TestUserService_ToggleFavorites(t *testing.T) {
	movieA := primitive.NewObjectID()
	movieB := primitive.NewObjectID()
	movieC := primitive.NewObjectID()

	t.Run("absent movie is appended", func(t *testing.T) {
		mockUsers := new(repositories.MockUserRepository)
		mockMovies := new(repositories.MockMovieRepository)
		svc := newUserService(mockUsers, mockMovies)

		user := &models.User{ID: primitive.NewObjectID(), Favorites: []primitive.ObjectID{movieA, movieB}}
		mockUsers.On("UpdateFavorites", mock.Anything, user.ID, []primitive.ObjectID{movieA, movieB, movieC}).Return(nil).Once()

		assert.NoError(t, svc.ToggleFavorites(context.Background(), movieC, user))
		mockUsers.AssertExpectations(t)
	})

	t.Run("present movie is removed", func(t *testing.T) {
		mockUsers := new(repositories.MockUserRepository)
		mockMovies := new(repositories.MockMovieRepository)
		svc := newUserService(mockUsers, mockMovies)

		user := &models.User{ID: primitive.NewObjectID(), Favorites: []primitive.ObjectID{movieA, movieB}}
		mockUsers.On("UpdateFavorites", mock.Anything, user.ID, []primitive.ObjectID{movieB}).Return(nil).Once()

		assert.NoError(t, svc.ToggleFavorites(context.Background(), movieA, user))
		mockUsers.AssertExpectations(t)
	})

	t.Run("duplicate entries are all removed", func(t *testing.T) {
		mockUsers := new(repositories.MockUserRepository)
		mockMovies := new(repositories.MockMovieRepository)
		svc := newUserService(mockUsers, mockMovies)

		user := &models.User{ID: primitive.NewObjectID(), Favorites: []primitive.ObjectID{movieA, movieB, movieA}}
		mockUsers.On("UpdateFavorites", mock.Anything, user.ID, []primitive.ObjectID{movieB}).Return(nil).Once()

		assert.NoError(t, svc.ToggleFavorites(context.Background(), movieA, user))
		mockUsers.AssertExpectations(t)
	})
}

func TestUserService_FavoriteMovies(t *testing.T) {
	t.Run("empty favorites yields empty slice", func(t *testing.T) {
		mockUsers := new(repositories.MockUserRepository)
		mockMovies := new(repositories.MockMovieRepository)
		svc := newUserService(mockUsers, mockMovies)

		id := primitive.NewObjectID()
		mockUsers.On("FindFavorites", mock.Anything, id).Return(&models.User{ID: id}, nil).Once()

		movies, err := svc.FavoriteMovies(context.Background(), id.Hex())
		assert.NoError(t, err)
		assert.Empty(t, movies)
		mockMovies.AssertNotCalled(t, "FindByIDsWithGenres", mock.Anything, mock.Anything)
	})

	t.Run("movies come back in favorites order with genres", func(t *testing.T) {
		mockUsers := new(repositories.MockUserRepository)
		mockMovies := new(repositories.MockMovieRepository)
		svc := newUserService(mockUsers, mockMovies)

		id := primitive.NewObjectID()
		first := models.MovieWithGenres{
			ID:     primitive.NewObjectID(),
			Title:  "Alien",
			Genres: []models.Genre{{ID: primitive.NewObjectID(), Name: "Horror"}},
		}
		second := models.MovieWithGenres{
			ID:     primitive.NewObjectID(),
			Title:  "Heat",
			Genres: []models.Genre{{ID: primitive.NewObjectID(), Name: "Crime"}},
		}
		favorites := []primitive.ObjectID{first.ID, second.ID}

		mockUsers.On("FindFavorites", mock.Anything, id).Return(&models.User{ID: id, Favorites: favorites}, nil).Once()
		// The aggregation may return them in any order.
		mockMovies.On("FindByIDsWithGenres", mock.Anything, favorites).Return([]models.MovieWithGenres{second, first}, nil).Once()

		movies, err := svc.FavoriteMovies(context.Background(), id.Hex())
		assert.NoError(t, err)
		assert.Equal(t, []models.MovieWithGenres{first, second}, movies)
		assert.NotEmpty(t, movies[0].Genres)
		mockUsers.AssertExpectations(t)
		mockMovies.AssertExpectations(t)
	})

	t.Run("absent user fails with not found", func(t *testing.T) {
		mockUsers := new(repositories.MockUserRepository)
		mockMovies := new(repositories.MockMovieRepository)
		svc := newUserService(mockUsers, mockMovies)

		id := primitive.NewObjectID()
		mockUsers.On("FindFavorites", mock.Anything, id).Return(nil, nil).Once()

		_, err := svc.FavoriteMovies(context.Background(), id.Hex())
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}
