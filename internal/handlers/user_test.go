package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moviehub-be/internal/handlers"
	"moviehub-be/internal/hash"
	"moviehub-be/internal/models"
	"moviehub-be/internal/repositories"
	"moviehub-be/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRouter(mockUsers *repositories.MockUserRepository) *mux.Router {
	mockMovies := new(repositories.MockMovieRepository)
	svc := services.NewUserService(mockUsers, mockMovies, hash.NewBcryptHasher())
	h := handlers.NewUserHandler(svc)

	router := mux.NewRouter()
	router.HandleFunc("/api/users", h.GetUsers).Methods("GET")
	router.HandleFunc("/api/users/{userID}", h.GetUser).Methods("GET")
	router.HandleFunc("/api/users/{userID}", h.UpdateUser).Methods("PUT")
	router.HandleFunc("/api/users/{userID}", h.DeleteUser).Methods("DELETE")
	return router
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	router := newTestRouter(mockUsers)

	id := primitive.NewObjectID()
	mockUsers.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+id.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockUsers.AssertExpectations(t)
}

func TestUserHandler_GetUser_BadID(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	router := newTestRouter(mockUsers)

	req := httptest.NewRequest(http.MethodGet, "/api/users/not-an-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_UpdateUser_EmailConflict(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	router := newTestRouter(mockUsers)

	id := primitive.NewObjectID()
	target := &models.User{ID: id, Email: "alice@example.com"}
	other := &models.User{ID: primitive.NewObjectID(), Email: "bob@example.com"}

	mockUsers.On("FindByID", mock.Anything, id).Return(target, nil).Once()
	mockUsers.On("FindByEmail", mock.Anything, "bob@example.com").Return(other, nil).Once()

	body := bytes.NewBufferString(`{"email":"bob@example.com"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/users/"+id.Hex(), body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	mockUsers.AssertExpectations(t)
}

func TestUserHandler_DeleteUser_AbsentIDSucceeds(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	router := newTestRouter(mockUsers)

	id := primitive.NewObjectID()
	mockUsers.On("DeleteByID", mock.Anything, id).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+id.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockUsers.AssertExpectations(t)
}

func TestUserHandler_GetUsers_NeverExposesPassword(t *testing.T) {
	mockUsers := new(repositories.MockUserRepository)
	router := newTestRouter(mockUsers)

	users := []models.User{
		{ID: primitive.NewObjectID(), Email: "bob@example.com", Password: "supersecret", CreatedAt: time.Now()},
	}
	mockUsers.On("FindAll", mock.Anything, "bob").Return(users, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/users?searchTerm=bob", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bob@example.com")
	assert.NotContains(t, rec.Body.String(), "supersecret")
	mockUsers.AssertExpectations(t)
}
