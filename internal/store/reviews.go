package store

import (
	"context"

	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *MongoStore) CreateReview(ctx context.Context, review *models.Review) (*models.InsertAck, error) {
	review.Id = primitive.NewObjectID()
	return s.insert(ctx, s.reviews, review)
}

func (s *MongoStore) GetReviews(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.reviews.Find(ctx, bson.D{})

	if err != nil {
		return nil, wrapErr("error finding reviews", err)
	}

	reviews := []models.Review{}

	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, wrapErr("error decoding reviews", err)
	}

	return pagination.Reverse(reviews), nil
}
