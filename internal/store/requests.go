package store

import (
	"context"

	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *MongoStore) CreateRequest(ctx context.Context, request *models.BookRequest) (*models.InsertAck, error) {
	request.Id = primitive.NewObjectID()
	return s.insert(ctx, s.requests, request)
}

func (s *MongoStore) GetRequests(ctx context.Context) ([]models.BookRequest, error) {
	return s.findRequests(ctx, bson.D{})
}

func (s *MongoStore) GetRequestsByEmail(ctx context.Context, email string) ([]models.BookRequest, error) {
	return s.findRequests(ctx, bson.M{"email": email})
}

func (s *MongoStore) findRequests(ctx context.Context, filter any) ([]models.BookRequest, error) {
	cursor, err := s.requests.Find(ctx, filter)

	if err != nil {
		return nil, wrapErr("error finding requested books", err)
	}

	requests := []models.BookRequest{}

	if err := cursor.All(ctx, &requests); err != nil {
		return nil, wrapErr("error decoding requested books", err)
	}

	return pagination.Reverse(requests), nil
}

// UpdateRequest sets status, returnDate and returnTime on the request with the
// given id, inserting a document with just those fields when none matches.
func (s *MongoStore) UpdateRequest(ctx context.Context, id string, update *models.RequestUpdate) (*models.UpdateAck, error) {
	oid, err := parseId(id)

	if err != nil {
		return nil, err
	}

	set := bson.M{
		"$set": bson.M{
			"status":     update.Status,
			"returnDate": update.ReturnDate,
			"returnTime": update.ReturnTime,
		},
	}

	res, err := s.requests.UpdateOne(ctx, bson.M{"_id": oid}, set, options.Update().SetUpsert(true))

	if err != nil {
		return nil, wrapErr("error updating requested book", err)
	}

	return updateAck(res), nil
}

func (s *MongoStore) DeleteRequest(ctx context.Context, id string) (*models.DeleteAck, error) {
	oid, err := parseId(id)

	if err != nil {
		return nil, err
	}

	res, err := s.requests.DeleteOne(ctx, bson.M{"_id": oid})

	if err != nil {
		return nil, wrapErr("error deleting requested book", err)
	}

	return &models.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
