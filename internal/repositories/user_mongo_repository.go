package repositories

import (
	"context"
	"regexp"
	"time"

	"moviehub-be/internal/db"
	"moviehub-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userMongoRepository struct {
	collection *mongo.Collection
}

// NewUserMongoRepository creates a UserRepository backed by the users
// collection.
func NewUserMongoRepository(m *db.Mongo) UserRepository {
	return &userMongoRepository{collection: m.Collection("users")}
}

func (r *userMongoRepository) Create(ctx context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	if user.Favorites == nil {
		user.Favorites = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *userMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userMongoRepository) FindAll(ctx context.Context, searchTerm string) ([]models.User, error) {
	filter := bson.M{}
	if searchTerm != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"email": primitive.Regex{Pattern: regexp.QuoteMeta(searchTerm), Options: "i"}},
		}}
	}

	opts := options.Find().
		SetProjection(bson.D{{Key: "password", Value: 0}}).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userMongoRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

func (r *userMongoRepository) Update(ctx context.Context, user *models.User) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}

func (r *userMongoRepository) UpdateFavorites(ctx context.Context, id primitive.ObjectID, favorites []primitive.ObjectID) error {
	if favorites == nil {
		favorites = []primitive.ObjectID{}
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"favorites": favorites}})
	return err
}

func (r *userMongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *userMongoRepository) FindFavorites(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	opts := options.FindOne().SetProjection(bson.D{{Key: "favorites", Value: 1}})

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
