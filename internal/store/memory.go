package store

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps every collection in insertion order in process memory.
// It backs the memory store mode and the tests; nothing is persisted.
type MemoryStore struct {
	mu       sync.RWMutex
	books    []models.Book
	users    []models.User
	requests []models.BookRequest
	reviews  []models.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func clone[T any](s []T) []T {
	return append([]T{}, s...)
}

func newestFirstById(a, b primitive.ObjectID) int {
	return bytes.Compare(b[:], a[:])
}

func (s *MemoryStore) CreateBook(ctx context.Context, book *models.Book) (*models.InsertAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.Id = primitive.NewObjectID()

	b := *book
	b.Image = bytes.Clone(book.Image)
	s.books = append(s.books, b)

	return &models.InsertAck{Acknowledged: true, InsertedId: book.Id}, nil
}

func (s *MemoryStore) sortedBooks() []models.Book {
	books := clone(s.books)
	slices.SortStableFunc(books, func(a, b models.Book) int {
		return newestFirstById(a.Id, b.Id)
	})
	return books
}

func (s *MemoryStore) ListBooks(ctx context.Context, page *pagination.Page) ([]models.Book, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := s.sortedBooks()
	count := int64(len(books))

	if page != nil {
		start, end := page.Window(len(books))
		books = books[start:end]
	}

	return books, count, nil
}

func (s *MemoryStore) GetRecentBooks(ctx context.Context, n int) ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := s.sortedBooks()

	if n < len(books) {
		books = books[:n]
	}

	return books, nil
}

func (s *MemoryStore) GetBooksByEmail(ctx context.Context, email string) ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := []models.Book{}

	for _, b := range s.books {
		if b.Email == email {
			books = append(books, b)
		}
	}

	return books, nil
}

func (s *MemoryStore) GetBook(ctx context.Context, id string) (*models.Book, error) {
	oid, err := parseId(id)

	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.Id == oid {
			b.Image = bytes.Clone(b.Image)
			return &b, nil
		}
	}

	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) (*models.InsertAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Id = primitive.NewObjectID()
	s.users = append(s.users, *user)

	return &models.InsertAck{Acknowledged: true, InsertedId: user.Id}, nil
}

func (s *MemoryStore) GetUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return pagination.Reverse(clone(s.users)), nil
}

func (s *MemoryStore) GetUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []models.User{}

	for _, u := range s.users {
		if u.Email == email {
			users = append(users, u)
		}
	}

	return users, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, ErrNotFound
}

func (s *MemoryStore) MakeAdmin(ctx context.Context, email string) (*models.UpdateAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ack := &models.UpdateAck{Acknowledged: true}

	for i := range s.users {
		if s.users[i].Email != email {
			continue
		}

		ack.MatchedCount = 1

		if s.users[i].Role != models.RoleAdmin {
			s.users[i].Role = models.RoleAdmin
			ack.ModifiedCount = 1
		}

		break
	}

	return ack, nil
}

func (s *MemoryStore) CreateRequest(ctx context.Context, request *models.BookRequest) (*models.InsertAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request.Id = primitive.NewObjectID()

	r := *request
	if request.Book != nil {
		ref := *request.Book
		r.Book = &ref
	}
	s.requests = append(s.requests, r)

	return &models.InsertAck{Acknowledged: true, InsertedId: request.Id}, nil
}

func (s *MemoryStore) GetRequests(ctx context.Context) ([]models.BookRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return pagination.Reverse(clone(s.requests)), nil
}

func (s *MemoryStore) GetRequestsByEmail(ctx context.Context, email string) ([]models.BookRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := []models.BookRequest{}

	for _, r := range s.requests {
		if r.Email == email {
			requests = append(requests, r)
		}
	}

	return pagination.Reverse(requests), nil
}

func (s *MemoryStore) UpdateRequest(ctx context.Context, id string, update *models.RequestUpdate) (*models.UpdateAck, error) {
	oid, err := parseId(id)

	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		r := &s.requests[i]
		if r.Id != oid {
			continue
		}

		ack := &models.UpdateAck{Acknowledged: true, MatchedCount: 1}

		if r.Status != update.Status || r.ReturnDate != update.ReturnDate || r.ReturnTime != update.ReturnTime {
			r.Status = update.Status
			r.ReturnDate = update.ReturnDate
			r.ReturnTime = update.ReturnTime
			ack.ModifiedCount = 1
		}

		return ack, nil
	}

	s.requests = append(s.requests, models.BookRequest{
		Id:         oid,
		Status:     update.Status,
		ReturnDate: update.ReturnDate,
		ReturnTime: update.ReturnTime,
	})

	return &models.UpdateAck{Acknowledged: true, UpsertedCount: 1, UpsertedId: &oid}, nil
}

func (s *MemoryStore) DeleteRequest(ctx context.Context, id string) (*models.DeleteAck, error) {
	oid, err := parseId(id)

	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.requests {
		if r.Id == oid {
			s.requests = slices.Delete(s.requests, i, i+1)
			return &models.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}

	return &models.DeleteAck{Acknowledged: true}, nil
}

func (s *MemoryStore) CreateReview(ctx context.Context, review *models.Review) (*models.InsertAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review.Id = primitive.NewObjectID()
	s.reviews = append(s.reviews, *review)

	return &models.InsertAck{Acknowledged: true, InsertedId: review.Id}, nil
}

func (s *MemoryStore) GetReviews(ctx context.Context) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return pagination.Reverse(clone(s.reviews)), nil
}
