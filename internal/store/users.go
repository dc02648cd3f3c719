package store

import (
	"context"
	"errors"

	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) (*models.InsertAck, error) {
	user.Id = primitive.NewObjectID()
	return s.insert(ctx, s.users, user)
}

func (s *MongoStore) GetUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.D{})

	if err != nil {
		return nil, wrapErr("error finding users", err)
	}

	users := []models.User{}

	if err := cursor.All(ctx, &users); err != nil {
		return nil, wrapErr("error decoding users", err)
	}

	return pagination.Reverse(users), nil
}

func (s *MongoStore) GetUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{"email": email})

	if err != nil {
		return nil, wrapErr("error finding users by email", err)
	}

	users := []models.User{}

	if err := cursor.All(ctx, &users); err != nil {
		return nil, wrapErr("error decoding users", err)
	}

	return users, nil
}

func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, wrapErr("error finding user", err)
	}

	return &user, nil
}

// MakeAdmin never creates a user; an unknown email matches nothing.
func (s *MongoStore) MakeAdmin(ctx context.Context, email string) (*models.UpdateAck, error) {
	res, err := s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": models.RoleAdmin}})

	if err != nil {
		return nil, wrapErr("error updating user role", err)
	}

	return updateAck(res), nil
}

func updateAck(res *mongo.UpdateResult) *models.UpdateAck {
	ack := &models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}

	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		ack.UpsertedId = &id
	}

	return ack
}
