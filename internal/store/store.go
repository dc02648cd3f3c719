package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrInvalidId   = errors.New("invalid id")
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("store unavailable")
)

const (
	collectionBooks    = "books"
	collectionUsers    = "users"
	collectionRequests = "requestedBook"
	collectionReviews  = "reviews"
)

type Store interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	CreateBook(ctx context.Context, book *models.Book) (*models.InsertAck, error)
	ListBooks(ctx context.Context, page *pagination.Page) ([]models.Book, int64, error)
	GetRecentBooks(ctx context.Context, n int) ([]models.Book, error)
	GetBooksByEmail(ctx context.Context, email string) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)

	CreateUser(ctx context.Context, user *models.User) (*models.InsertAck, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUsersByEmail(ctx context.Context, email string) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	MakeAdmin(ctx context.Context, email string) (*models.UpdateAck, error)

	CreateRequest(ctx context.Context, request *models.BookRequest) (*models.InsertAck, error)
	GetRequests(ctx context.Context) ([]models.BookRequest, error)
	GetRequestsByEmail(ctx context.Context, email string) ([]models.BookRequest, error)
	UpdateRequest(ctx context.Context, id string, update *models.RequestUpdate) (*models.UpdateAck, error)
	DeleteRequest(ctx context.Context, id string) (*models.DeleteAck, error)

	CreateReview(ctx context.Context, review *models.Review) (*models.InsertAck, error)
	GetReviews(ctx context.Context) ([]models.Review, error)
}

var (
	_ Store = (*MongoStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

type MongoStore struct {
	client   *mongo.Client
	books    *mongo.Collection
	users    *mongo.Collection
	requests *mongo.Collection
	reviews  *mongo.Collection
}

// NewMongoStore connects to uri and pings the primary before returning, so a
// store that cannot be reached fails at startup rather than on first request.
func NewMongoStore(ctx context.Context, uri string, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))

	if err != nil {
		return nil, wrapErr("error connecting to db", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, wrapErr("error pinging db", err)
	}

	db := client.Database(database)

	return &MongoStore{
		client:   client,
		books:    db.Collection(collectionBooks),
		users:    db.Collection(collectionUsers),
		requests: db.Collection(collectionRequests),
		reviews:  db.Collection(collectionReviews),
	}, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return wrapErr("error pinging db", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting db: %w", err)
	}
	return nil
}

func parseId(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidId, id)
	}
	return oid, nil
}

// wrapErr marks driver timeouts and network failures as ErrUnavailable.
func wrapErr(msg string, err error) error {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", msg, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *MongoStore) insert(ctx context.Context, coll *mongo.Collection, doc any) (*models.InsertAck, error) {
	res, err := coll.InsertOne(ctx, doc)

	if err != nil {
		return nil, wrapErr(fmt.Sprintf("error inserting into %s", coll.Name()), err)
	}

	ack := &models.InsertAck{Acknowledged: true}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		ack.InsertedId = id
	}

	return ack, nil
}
