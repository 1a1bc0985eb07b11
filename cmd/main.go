package main

import (
	"context"
	"net/http"
	"time"

	"moviehub-be/internal/config"
	"moviehub-be/internal/db"
	"moviehub-be/internal/handlers"
	"moviehub-be/internal/hash"
	"moviehub-be/internal/logger"
	"moviehub-be/internal/middleware"
	"moviehub-be/internal/repositories"
	"moviehub-be/internal/services"
	"moviehub-be/internal/token"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Connect to MongoDB
	mongo, err := db.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongo.Close(ctx); err != nil {
			log.Errorf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	log.Info("Successfully connected to MongoDB")

	// Initialize collaborators, services and handlers
	hasher := hash.NewBcryptHasher()
	tokens := token.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTL)*time.Hour)

	userRepo := repositories.NewUserMongoRepository(mongo)
	movieRepo := repositories.NewMovieMongoRepository(mongo)
	genreRepo := repositories.NewGenreMongoRepository(mongo)

	userService := services.NewUserService(userRepo, movieRepo, hasher)
	authService := services.NewAuthService(userRepo, hasher, tokens)
	movieService := services.NewMovieService(movieRepo)
	genreService := services.NewGenreService(genreRepo)
	fileService := services.NewFileService(cfg.UploadDir, cfg.BaseURL)

	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	movieHandler := handlers.NewMovieHandler(movieService)
	genreHandler := handlers.NewGenreHandler(genreService)
	fileHandler := handlers.NewFileHandler(fileService)

	// Set up router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(log))
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	router.HandleFunc("/api/movies", movieHandler.GetMovies).Methods("GET")
	router.HandleFunc("/api/movies/{movieID}", movieHandler.GetMovie).Methods("GET")
	router.HandleFunc("/api/genres", genreHandler.GetGenres).Methods("GET")

	// Authenticated routes
	profile := router.PathPrefix("/api/users/profile").Subrouter()
	profile.Use(middleware.Auth(tokens))
	profile.HandleFunc("", userHandler.GetProfile).Methods("GET")
	profile.HandleFunc("", userHandler.UpdateProfile).Methods("PUT")
	profile.HandleFunc("/favorites", userHandler.GetFavorites).Methods("GET")
	profile.HandleFunc("/favorites", userHandler.ToggleFavorite).Methods("PUT")

	// Admin routes
	admin := router.PathPrefix("/api").Subrouter()
	admin.Use(middleware.Auth(tokens), middleware.AdminOnly())
	admin.HandleFunc("/users", userHandler.GetUsers).Methods("GET")
	admin.HandleFunc("/users/count", userHandler.GetUserCount).Methods("GET")
	admin.HandleFunc("/users/{userID}", userHandler.GetUser).Methods("GET")
	admin.HandleFunc("/users/{userID}", userHandler.UpdateUser).Methods("PUT")
	admin.HandleFunc("/users/{userID}", userHandler.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/movies", movieHandler.CreateMovie).Methods("POST")
	admin.HandleFunc("/genres", genreHandler.CreateGenre).Methods("POST")
	admin.HandleFunc("/genres/{genreID}", genreHandler.DeleteGenre).Methods("DELETE")
	admin.HandleFunc("/files", fileHandler.SaveFiles).Methods("POST")

	// Serve uploaded files
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Start server
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Infof("Server running on port %s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
