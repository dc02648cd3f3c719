package store

import (
	"context"
	"errors"

	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = bson.D{{Key: "_id", Value: -1}}

func (s *MongoStore) CreateBook(ctx context.Context, book *models.Book) (*models.InsertAck, error) {
	book.Id = primitive.NewObjectID()
	return s.insert(ctx, s.books, book)
}

// ListBooks returns books newest first. When page is nil every book is
// returned. The count covers the whole collection either way.
func (s *MongoStore) ListBooks(ctx context.Context, page *pagination.Page) ([]models.Book, int64, error) {
	opts := options.Find().SetSort(newestFirst)

	if page != nil {
		opts.SetSkip(page.Skip()).SetLimit(page.Limit())
	}

	cursor, err := s.books.Find(ctx, bson.D{}, opts)

	if err != nil {
		return nil, 0, wrapErr("error finding books", err)
	}

	books := []models.Book{}

	if err := cursor.All(ctx, &books); err != nil {
		return nil, 0, wrapErr("error decoding books", err)
	}

	count, err := s.books.CountDocuments(ctx, bson.D{})

	if err != nil {
		return nil, 0, wrapErr("error counting books", err)
	}

	return books, count, nil
}

func (s *MongoStore) GetRecentBooks(ctx context.Context, n int) ([]models.Book, error) {
	cursor, err := s.books.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst).SetLimit(int64(n)))

	if err != nil {
		return nil, wrapErr("error finding recent books", err)
	}

	books := []models.Book{}

	if err := cursor.All(ctx, &books); err != nil {
		return nil, wrapErr("error decoding recent books", err)
	}

	return books, nil
}

func (s *MongoStore) GetBooksByEmail(ctx context.Context, email string) ([]models.Book, error) {
	cursor, err := s.books.Find(ctx, bson.M{"email": email})

	if err != nil {
		return nil, wrapErr("error finding books by email", err)
	}

	books := []models.Book{}

	if err := cursor.All(ctx, &books); err != nil {
		return nil, wrapErr("error decoding books", err)
	}

	return books, nil
}

func (s *MongoStore) GetBook(ctx context.Context, id string) (*models.Book, error) {
	oid, err := parseId(id)

	if err != nil {
		return nil, err
	}

	var book models.Book

	if err := s.books.FindOne(ctx, bson.M{"_id": oid}).Decode(&book); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, wrapErr("error finding book", err)
	}

	return &book, nil
}
