package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// runStoreTests exercises the behaviour every Store implementation shares.
// newStore must return an empty store.
func runStoreTests(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("list books", func(t *testing.T) { testListBooks(t, newStore(t)) })
	t.Run("recent books", func(t *testing.T) { testRecentBooks(t, newStore(t)) })
	t.Run("books by email", func(t *testing.T) { testBooksByEmail(t, newStore(t)) })
	t.Run("get book", func(t *testing.T) { testGetBook(t, newStore(t)) })
	t.Run("book without image", func(t *testing.T) { testBookWithoutImage(t, newStore(t)) })
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("make admin", func(t *testing.T) { testMakeAdmin(t, newStore(t)) })
	t.Run("requests", func(t *testing.T) { testRequests(t, newStore(t)) })
	t.Run("update request", func(t *testing.T) { testUpdateRequest(t, newStore(t)) })
	t.Run("delete request", func(t *testing.T) { testDeleteRequest(t, newStore(t)) })
	t.Run("reviews", func(t *testing.T) { testReviews(t, newStore(t)) })
}

func createBooks(t *testing.T, s Store, n int) []primitive.ObjectID {
	var ids []primitive.ObjectID

	for i := 1; i <= n; i++ {
		ack, err := s.CreateBook(context.Background(), &models.Book{
			Name:  fmt.Sprintf("%d", i),
			Image: []byte{byte(i)},
		})
		if err != nil {
			t.Fatalf("error creating book: %v", err)
		}
		ids = append(ids, ack.InsertedId)
	}

	return ids
}

func bookNames(books []models.Book) []string {
	names := []string{}
	for _, b := range books {
		names = append(names, b.Name)
	}
	return names
}

func testListBooks(t *testing.T, s Store) {
	createBooks(t, s, 5)

	tests := []struct {
		name   string
		page   *pagination.Page
		expect []string
	}{
		{name: "should return every book newest first without pagination", expect: []string{"5", "4", "3", "2", "1"}},
		{name: "should return the first page", page: &pagination.Page{Page: 1, Size: 2}, expect: []string{"5", "4"}},
		{name: "should skip (page-1)*size books", page: &pagination.Page{Page: 2, Size: 2}, expect: []string{"3", "2"}},
		{name: "should return a short last page", page: &pagination.Page{Page: 3, Size: 2}, expect: []string{"1"}},
		{name: "should return an empty page past the end", page: &pagination.Page{Page: 4, Size: 2}, expect: []string{}},
		{name: "should cap at the collection size", page: &pagination.Page{Page: 1, Size: 10}, expect: []string{"5", "4", "3", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, count, err := s.ListBooks(context.Background(), tt.page)
			if err != nil {
				t.Fatal(err)
			}

			if count != 5 {
				t.Fatalf("expected count 5, got %d", count)
			}

			if got := bookNames(books); !slices.Equal(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func testRecentBooks(t *testing.T, s Store) {
	books, err := s.GetRecentBooks(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}

	if len(books) != 0 {
		t.Fatalf("expected no books, got %d", len(books))
	}

	createBooks(t, s, 3)

	books, err = s.GetRecentBooks(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}

	if got := bookNames(books); !slices.Equal(got, []string{"3", "2", "1"}) {
		t.Fatalf("expected [3 2 1], got %v", got)
	}

	createBooks(t, s, 3)

	books, err = s.GetRecentBooks(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}

	if len(books) != 4 {
		t.Fatalf("expected 4 books, got %d", len(books))
	}

	seen := map[primitive.ObjectID]bool{}
	for i, b := range books {
		if seen[b.Id] {
			t.Fatalf("duplicate book %s", b.Id.Hex())
		}
		seen[b.Id] = true

		if i > 0 && bytes.Compare(books[i-1].Id[:], b.Id[:]) <= 0 {
			t.Fatalf("books are not in descending id order at %d", i)
		}
	}
}

func testBooksByEmail(t *testing.T, s Store) {
	for _, email := range []string{"a@test.com", "b@test.com", "a@test.com"} {
		if _, err := s.CreateBook(context.Background(), &models.Book{Name: email, Email: email}); err != nil {
			t.Fatal(err)
		}
	}

	books, err := s.GetBooksByEmail(context.Background(), "a@test.com")
	if err != nil {
		t.Fatal(err)
	}

	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}

	books, err = s.GetBooksByEmail(context.Background(), "nobody@test.com")
	if err != nil {
		t.Fatal(err)
	}

	if books == nil || len(books) != 0 {
		t.Fatalf("expected empty books, got %v", books)
	}
}

func testGetBook(t *testing.T, s Store) {
	image := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x10}

	ack, err := s.CreateBook(context.Background(), &models.Book{Name: "cover", Image: image})
	if err != nil {
		t.Fatal(err)
	}

	if !ack.Acknowledged || ack.InsertedId.IsZero() {
		t.Fatalf("unexpected ack %+v", ack)
	}

	book, err := s.GetBook(context.Background(), ack.InsertedId.Hex())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(book.Image, image) {
		t.Fatalf("expected image %v, got %v", image, book.Image)
	}

	if _, err := s.GetBook(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := s.GetBook(context.Background(), "not-an-id"); !errors.Is(err, ErrInvalidId) {
		t.Fatalf("expected ErrInvalidId, got %v", err)
	}
}

func testBookWithoutImage(t *testing.T, s Store) {
	ack, err := s.CreateBook(context.Background(), &models.Book{Name: "no cover"})
	if err != nil {
		t.Fatal(err)
	}

	book, err := s.GetBook(context.Background(), ack.InsertedId.Hex())
	if err != nil {
		t.Fatal(err)
	}

	if book.Name != "no cover" {
		t.Fatalf("expected no cover, got %s", book.Name)
	}

	if len(book.Image) != 0 || book.ImageType != "" {
		t.Fatalf("expected empty image, got %v of %q", book.Image, book.ImageType)
	}
}

func testUsers(t *testing.T, s Store) {
	for _, email := range []string{"first@test.com", "second@test.com", "third@test.com"} {
		if _, err := s.CreateUser(context.Background(), &models.User{Email: email, Role: models.RoleOrdinary}); err != nil {
			t.Fatal(err)
		}
	}

	users, err := s.GetUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var emails []string
	for _, u := range users {
		emails = append(emails, u.Email)
	}

	if !slices.Equal(emails, []string{"third@test.com", "second@test.com", "first@test.com"}) {
		t.Fatalf("expected users in reverse order, got %v", emails)
	}

	matches, err := s.GetUsersByEmail(context.Background(), "second@test.com")
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 1 || matches[0].Email != "second@test.com" {
		t.Fatalf("unexpected matches %+v", matches)
	}

	if _, err := s.GetUserByEmail(context.Background(), "missing@test.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testMakeAdmin(t *testing.T, s Store) {
	if _, err := s.CreateUser(context.Background(), &models.User{Email: "admin@test.com", Role: models.RoleOrdinary}); err != nil {
		t.Fatal(err)
	}

	ack, err := s.MakeAdmin(context.Background(), "admin@test.com")
	if err != nil {
		t.Fatal(err)
	}

	if ack.MatchedCount != 1 || ack.ModifiedCount != 1 {
		t.Fatalf("unexpected ack %+v", ack)
	}

	user, err := s.GetUserByEmail(context.Background(), "admin@test.com")
	if err != nil {
		t.Fatal(err)
	}

	if !user.IsAdmin() {
		t.Fatalf("expected admin role, got %s", user.Role)
	}

	ack, err = s.MakeAdmin(context.Background(), "ghost@test.com")
	if err != nil {
		t.Fatal(err)
	}

	if ack.MatchedCount != 0 || ack.UpsertedCount != 0 || ack.UpsertedId != nil {
		t.Fatalf("expected no-op ack, got %+v", ack)
	}

	if _, err := s.GetUserByEmail(context.Background(), "ghost@test.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no user to be created, got %v", err)
	}
}

func testRequests(t *testing.T, s Store) {
	for i, email := range []string{"reader@test.com", "other@test.com", "reader@test.com"} {
		request := &models.BookRequest{
			Email:  email,
			Book:   &models.BookRef{Name: fmt.Sprintf("book %d", i)},
			Status: models.StatusPending,
		}
		if _, err := s.CreateRequest(context.Background(), request); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.GetRequests(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(all) != 3 || all[0].Book.Name != "book 2" || all[2].Book.Name != "book 0" {
		t.Fatalf("expected requests in reverse order, got %+v", all)
	}

	mine, err := s.GetRequestsByEmail(context.Background(), "reader@test.com")
	if err != nil {
		t.Fatal(err)
	}

	if len(mine) != 2 || mine[0].Book.Name != "book 2" || mine[1].Book.Name != "book 0" {
		t.Fatalf("expected reader requests in reverse order, got %+v", mine)
	}
}

func testUpdateRequest(t *testing.T, s Store) {
	ack, err := s.CreateRequest(context.Background(), &models.BookRequest{Email: "reader@test.com", Status: models.StatusPending})
	if err != nil {
		t.Fatal(err)
	}

	update := &models.RequestUpdate{Status: "approved", ReturnDate: "2026-11-01", ReturnTime: "10:00"}

	res, err := s.UpdateRequest(context.Background(), ack.InsertedId.Hex(), update)
	if err != nil {
		t.Fatal(err)
	}

	if res.MatchedCount != 1 || res.ModifiedCount != 1 || res.UpsertedId != nil {
		t.Fatalf("unexpected update ack %+v", res)
	}

	missing := primitive.NewObjectID()

	res, err = s.UpdateRequest(context.Background(), missing.Hex(), update)
	if err != nil {
		t.Fatal(err)
	}

	if res.UpsertedCount != 1 || res.UpsertedId == nil || *res.UpsertedId != missing {
		t.Fatalf("expected upsert of %s, got %+v", missing.Hex(), res)
	}

	requests, err := s.GetRequests(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var upserted *models.BookRequest
	for i := range requests {
		if requests[i].Id == missing {
			upserted = &requests[i]
		}
	}

	if upserted == nil {
		t.Fatal("expected upserted request to be listed")
	}

	expect := models.BookRequest{Id: missing, Status: "approved", ReturnDate: "2026-11-01", ReturnTime: "10:00"}

	if upserted.Id != expect.Id || upserted.Email != "" || upserted.Book != nil ||
		upserted.Status != expect.Status || upserted.ReturnDate != expect.ReturnDate || upserted.ReturnTime != expect.ReturnTime {
		t.Fatalf("expected %+v, got %+v", expect, *upserted)
	}

	if _, err := s.UpdateRequest(context.Background(), "bad-id", update); !errors.Is(err, ErrInvalidId) {
		t.Fatalf("expected ErrInvalidId, got %v", err)
	}
}

func testDeleteRequest(t *testing.T, s Store) {
	ack, err := s.CreateRequest(context.Background(), &models.BookRequest{Email: "reader@test.com"})
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.DeleteRequest(context.Background(), ack.InsertedId.Hex())
	if err != nil {
		t.Fatal(err)
	}

	if res.DeletedCount != 1 {
		t.Fatalf("expected 1 deleted, got %d", res.DeletedCount)
	}

	res, err = s.DeleteRequest(context.Background(), ack.InsertedId.Hex())
	if err != nil {
		t.Fatal(err)
	}

	if !res.Acknowledged || res.DeletedCount != 0 {
		t.Fatalf("expected zero-affected ack, got %+v", res)
	}

	if _, err := s.DeleteRequest(context.Background(), "123"); !errors.Is(err, ErrInvalidId) {
		t.Fatalf("expected ErrInvalidId, got %v", err)
	}
}

func testReviews(t *testing.T, s Store) {
	for i := 1; i <= 3; i++ {
		if _, err := s.CreateReview(context.Background(), &models.Review{Email: "reader@test.com", Review: fmt.Sprintf("review %d", i), Rating: i}); err != nil {
			t.Fatal(err)
		}
	}

	reviews, err := s.GetReviews(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(reviews) != 3 || reviews[0].Rating != 3 || reviews[2].Rating != 1 {
		t.Fatalf("expected reviews in reverse order, got %+v", reviews)
	}
}
