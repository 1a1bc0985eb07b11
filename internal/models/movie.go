package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie model. Genres holds references into the genres collection.
type Movie struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title     string               `bson:"title" json:"title" validate:"required"`
	PosterURL string               `bson:"poster_url" json:"poster_url"`
	Year      int                  `bson:"year" json:"year"`
	Genres    []primitive.ObjectID `bson:"genres" json:"genres"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
}

// MovieWithGenres is a movie whose genre references have been expanded.
// Produced by the $lookup aggregation, never stored.
type MovieWithGenres struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Title     string             `bson:"title" json:"title"`
	PosterURL string             `bson:"poster_url" json:"poster_url"`
	Year      int                `bson:"year" json:"year"`
	Genres    []Genre            `bson:"genres" json:"genres"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Genre model
type Genre struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
