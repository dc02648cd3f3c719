package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/oseayemenre/pathagar/internal/config"
	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testLogger struct{}

func (l *testLogger) Info(msg string, args ...any)  {}
func (l *testLogger) Error(msg string, args ...any) {}
func (l *testLogger) Warn(msg string, args ...any)  {}

type testStore struct {
	pingFunc               func(ctx context.Context) error
	createBookFunc         func(ctx context.Context, book *models.Book) (*models.InsertAck, error)
	listBooksFunc          func(ctx context.Context, page *pagination.Page) ([]models.Book, int64, error)
	getRecentBooksFunc     func(ctx context.Context, n int) ([]models.Book, error)
	getBooksByEmailFunc    func(ctx context.Context, email string) ([]models.Book, error)
	getBookFunc            func(ctx context.Context, id string) (*models.Book, error)
	createUserFunc         func(ctx context.Context, user *models.User) (*models.InsertAck, error)
	getUsersFunc           func(ctx context.Context) ([]models.User, error)
	getUsersByEmailFunc    func(ctx context.Context, email string) ([]models.User, error)
	getUserByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	makeAdminFunc          func(ctx context.Context, email string) (*models.UpdateAck, error)
	createRequestFunc      func(ctx context.Context, request *models.BookRequest) (*models.InsertAck, error)
	getRequestsFunc        func(ctx context.Context) ([]models.BookRequest, error)
	getRequestsByEmailFunc func(ctx context.Context, email string) ([]models.BookRequest, error)
	updateRequestFunc      func(ctx context.Context, id string, update *models.RequestUpdate) (*models.UpdateAck, error)
	deleteRequestFunc      func(ctx context.Context, id string) (*models.DeleteAck, error)
	createReviewFunc       func(ctx context.Context, review *models.Review) (*models.InsertAck, error)
	getReviewsFunc         func(ctx context.Context) ([]models.Review, error)
}

func testInsertAck() *models.InsertAck {
	return &models.InsertAck{Acknowledged: true, InsertedId: primitive.NewObjectID()}
}

func (s *testStore) Ping(ctx context.Context) error {
	if s.pingFunc != nil {
		return s.pingFunc(ctx)
	}
	return nil
}

func (s *testStore) Close(ctx context.Context) error {
	return nil
}

func (s *testStore) CreateBook(ctx context.Context, book *models.Book) (*models.InsertAck, error) {
	if s.createBookFunc != nil {
		return s.createBookFunc(ctx, book)
	}
	return testInsertAck(), nil
}

func (s *testStore) ListBooks(ctx context.Context, page *pagination.Page) ([]models.Book, int64, error) {
	if s.listBooksFunc != nil {
		return s.listBooksFunc(ctx, page)
	}
	return []models.Book{}, 0, nil
}

func (s *testStore) GetRecentBooks(ctx context.Context, n int) ([]models.Book, error) {
	if s.getRecentBooksFunc != nil {
		return s.getRecentBooksFunc(ctx, n)
	}
	return []models.Book{}, nil
}

func (s *testStore) GetBooksByEmail(ctx context.Context, email string) ([]models.Book, error) {
	if s.getBooksByEmailFunc != nil {
		return s.getBooksByEmailFunc(ctx, email)
	}
	return []models.Book{}, nil
}

func (s *testStore) GetBook(ctx context.Context, id string) (*models.Book, error) {
	if s.getBookFunc != nil {
		return s.getBookFunc(ctx, id)
	}
	return &models.Book{}, nil
}

func (s *testStore) CreateUser(ctx context.Context, user *models.User) (*models.InsertAck, error) {
	if s.createUserFunc != nil {
		return s.createUserFunc(ctx, user)
	}
	return testInsertAck(), nil
}

func (s *testStore) GetUsers(ctx context.Context) ([]models.User, error) {
	if s.getUsersFunc != nil {
		return s.getUsersFunc(ctx)
	}
	return []models.User{}, nil
}

func (s *testStore) GetUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	if s.getUsersByEmailFunc != nil {
		return s.getUsersByEmailFunc(ctx, email)
	}
	return []models.User{}, nil
}

func (s *testStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getUserByEmailFunc != nil {
		return s.getUserByEmailFunc(ctx, email)
	}
	return &models.User{Email: email, Role: models.RoleOrdinary}, nil
}

func (s *testStore) MakeAdmin(ctx context.Context, email string) (*models.UpdateAck, error) {
	if s.makeAdminFunc != nil {
		return s.makeAdminFunc(ctx, email)
	}
	return &models.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *testStore) CreateRequest(ctx context.Context, request *models.BookRequest) (*models.InsertAck, error) {
	if s.createRequestFunc != nil {
		return s.createRequestFunc(ctx, request)
	}
	return testInsertAck(), nil
}

func (s *testStore) GetRequests(ctx context.Context) ([]models.BookRequest, error) {
	if s.getRequestsFunc != nil {
		return s.getRequestsFunc(ctx)
	}
	return []models.BookRequest{}, nil
}

func (s *testStore) GetRequestsByEmail(ctx context.Context, email string) ([]models.BookRequest, error) {
	if s.getRequestsByEmailFunc != nil {
		return s.getRequestsByEmailFunc(ctx, email)
	}
	return []models.BookRequest{}, nil
}

func (s *testStore) UpdateRequest(ctx context.Context, id string, update *models.RequestUpdate) (*models.UpdateAck, error) {
	if s.updateRequestFunc != nil {
		return s.updateRequestFunc(ctx, id, update)
	}
	return &models.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *testStore) DeleteRequest(ctx context.Context, id string) (*models.DeleteAck, error) {
	if s.deleteRequestFunc != nil {
		return s.deleteRequestFunc(ctx, id)
	}
	return &models.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

func (s *testStore) CreateReview(ctx context.Context, review *models.Review) (*models.InsertAck, error) {
	if s.createReviewFunc != nil {
		return s.createReviewFunc(ctx, review)
	}
	return testInsertAck(), nil
}

func (s *testStore) GetReviews(ctx context.Context) ([]models.Review, error) {
	if s.getReviewsFunc != nil {
		return s.getReviewsFunc(ctx)
	}
	return []models.Review{}, nil
}

// newTestApi wires the store behind the full router so path params and
// middleware behave as in production.
func newTestApi(s *testStore) *Api {
	a := New(chi.NewRouter(), &testLogger{}, s, &config.Config{Cors_origins: "*"})
	a.RegisterRoutes()
	return a
}
