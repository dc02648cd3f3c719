package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/pagination"
	"github.com/oseayemenre/pathagar/internal/store"
)

const (
	maxUploadSize  = 8 << 20
	maxImageSize   = 3 << 20
	newBooksLimit  = 4
	bookImageField = "image"
)

var errImageTooLarge = errors.New("book image too large")

// HandleCreateBook godoc
//
//	@Summary		Add a book
//	@Description	Adds a book with its metadata and cover image
//	@Tags			books
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Book name"
//	@Param			category	formData	string	false	"Category"
//	@Param			author		formData	string	false	"Author"
//	@Param			translator	formData	string	false	"Translator"
//	@Param			publisher	formData	string	false	"Publisher"
//	@Param			email		formData	string	false	"Uploader email"
//	@Param			image		formData	file	false	"Cover image (max 3MB)"
//	@Success		200			{object}	models.InsertAck
//	@Failure		400			{object}	models.ErrorResponse
//	@Failure		413			{object}	models.ErrorResponse
//	@Failure		500			{object}	models.ErrorResponse
//	@Router			/books [post]
func (a *Api) HandleCreateBook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			a.logger.Warn("request body too large", "service", "HandleCreateBook")
			respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body too large"))
			return
		}

		a.logger.Warn(fmt.Sprintf("error parsing form: %v", err), "service", "HandleCreateBook")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("error parsing form: %v", err))
		return
	}

	defer r.MultipartForm.RemoveAll()

	image, err := a.readBookImage(w, r)

	if err != nil {
		return
	}

	book := &models.Book{
		Name:       r.FormValue("name"),
		Category:   r.FormValue("category"),
		Author:     r.FormValue("author"),
		Translator: r.FormValue("translator"),
		Publisher:  r.FormValue("publisher"),
		Email:      r.FormValue("email"),
		Image:      image,
	}

	if image != nil {
		book.ImageType = mimetype.Detect(image).String()
	}

	if err := validate.Struct(book); err != nil {
		a.logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleCreateBook")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("validation error: %v", err))
		return
	}

	ack, err := a.store.CreateBook(r.Context(), book)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleCreateBook")
		return
	}

	respondWithSuccess(w, http.StatusOK, ack)
}

// readBookImage returns the bytes of the optional image part, or nil when the
// form has none. It writes the error response itself.
func (a *Api) readBookImage(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	file, header, err := r.FormFile(bookImageField)

	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		a.logger.Warn(fmt.Sprintf("error reading image: %v", err), "service", "HandleCreateBook")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("error reading image: %v", err))
		return nil, err
	}

	defer file.Close()

	if header.Size > maxImageSize {
		a.logger.Warn("book image too large", "service", "HandleCreateBook")
		respondWithError(w, http.StatusRequestEntityTooLarge, errImageTooLarge)
		return nil, errImageTooLarge
	}

	fileData, err := io.ReadAll(file)

	if err != nil {
		a.logger.Error(fmt.Sprintf("error reading bytes: %v", err), "service", "HandleCreateBook")
		respondWithError(w, http.StatusInternalServerError, fmt.Errorf("error reading bytes: %v", err))
		return nil, err
	}

	return fileData, nil
}

// HandleGetBooks godoc
//
//	@Summary		Get books
//	@Description	Get books newest first, paginated when page and size are set, or the books uploaded by email
//	@Tags			books
//	@Produce		json
//	@Param			page	query		int		false	"1-based page"
//	@Param			size	query		int		false	"page size"
//	@Param			email	query		string	false	"uploader email"
//	@Success		200		{object}	models.HandleGetBooksResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/books [get]
func (a *Api) HandleGetBooks(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("email") {
		a.handleGetBooksByEmail(w, r)
		return
	}

	var page *pagination.Page

	if p, ok := pagination.Parse(r.URL.Query()); ok {
		page = &p
	}

	books, count, err := a.store.ListBooks(r.Context(), page)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleGetBooks")
		return
	}

	respondWithSuccess(w, http.StatusOK, &models.HandleGetBooksResponse{Count: count, Books: books})
}

func (a *Api) handleGetBooksByEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := a.requireQuery(w, r, "email", "HandleGetBooks")

	if !ok {
		return
	}

	books, err := a.store.GetBooksByEmail(r.Context(), email)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleGetBooks")
		return
	}

	respondWithSuccess(w, http.StatusOK, books)
}

// HandleGetBook godoc
//
//	@Summary		Get book
//	@Description	Get book by id, null when no book has the id
//	@Tags			books
//	@Produce		json
//	@Param			id	path		string	true	"book id"
//	@Success		200	{object}	models.Book
//	@Failure		400	{object}	models.ErrorResponse
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/books/{id} [get]
func (a *Api) HandleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := a.store.GetBook(r.Context(), chi.URLParam(r, "id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondWithSuccess(w, http.StatusOK, nil)
			return
		}

		a.respondWithStoreError(w, err, "HandleGetBook")
		return
	}

	respondWithSuccess(w, http.StatusOK, book)
}

// HandleGetNewBooks godoc
//
//	@Summary		Get newest books
//	@Description	Get the four most recently added books
//	@Tags			books
//	@Produce		json
//	@Success		200	{array}		models.Book
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/newBooks [get]
func (a *Api) HandleGetNewBooks(w http.ResponseWriter, r *http.Request) {
	books, err := a.store.GetRecentBooks(r.Context(), newBooksLimit)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleGetNewBooks")
		return
	}

	respondWithSuccess(w, http.StatusOK, books)
}
