package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oseayemenre/pathagar/internal/models"
)

// HandleCreateRequest godoc
//
//	@Summary		Request a book
//	@Tags			requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.BookRequest	true	"book request"
//	@Success		200		{object}	models.InsertAck
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/requestedBooks [post]
func (a *Api) HandleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var request models.BookRequest

	if !a.decodeAndValidate(w, r, &request, "HandleCreateRequest") {
		return
	}

	if request.Status == "" {
		request.Status = models.StatusPending
	}

	ack, err := a.store.CreateRequest(r.Context(), &request)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleCreateRequest")
		return
	}

	respondWithSuccess(w, http.StatusOK, ack)
}

// HandleGetRequests godoc
//
//	@Summary		Get requested books
//	@Tags			requests
//	@Produce		json
//	@Success		200	{array}		models.BookRequest
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/requestedBooks [get]
func (a *Api) HandleGetRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := a.store.GetRequests(r.Context())

	if err != nil {
		a.respondWithStoreError(w, err, "HandleGetRequests")
		return
	}

	respondWithSuccess(w, http.StatusOK, requests)
}

// HandleGetRequestsByEmail godoc
//
//	@Summary		Get requested books by email
//	@Tags			requests
//	@Produce		json
//	@Param			email	query		string	true	"requester email"
//	@Success		200		{array}		models.BookRequest
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/requestedBook [get]
func (a *Api) HandleGetRequestsByEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := a.requireQuery(w, r, "email", "HandleGetRequestsByEmail")

	if !ok {
		return
	}

	requests, err := a.store.GetRequestsByEmail(r.Context(), email)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleGetRequestsByEmail")
		return
	}

	respondWithSuccess(w, http.StatusOK, requests)
}

// HandleUpdateRequest godoc
//
//	@Summary		Update requested book
//	@Description	Sets status, return date and return time, creating the request when the id is unknown
//	@Tags			requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"request id"
//	@Param			body	body		models.RequestUpdate	true	"update"
//	@Success		200		{object}	models.UpdateAck
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/requestedBook/{id} [put]
func (a *Api) HandleUpdateRequest(w http.ResponseWriter, r *http.Request) {
	var params models.RequestUpdate

	if !a.decodeAndValidate(w, r, &params, "HandleUpdateRequest") {
		return
	}

	ack, err := a.store.UpdateRequest(r.Context(), chi.URLParam(r, "id"), &params)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleUpdateRequest")
		return
	}

	respondWithSuccess(w, http.StatusOK, ack)
}

// HandleDeleteRequest godoc
//
//	@Summary		Cancel requested book
//	@Tags			requests
//	@Produce		json
//	@Param			id	path		string	true	"request id"
//	@Success		200	{object}	models.DeleteAck
//	@Failure		400	{object}	models.ErrorResponse
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/requestedBook/{id} [delete]
func (a *Api) HandleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	ack, err := a.store.DeleteRequest(r.Context(), chi.URLParam(r, "id"))

	if err != nil {
		a.respondWithStoreError(w, err, "HandleDeleteRequest")
		return
	}

	respondWithSuccess(w, http.StatusOK, ack)
}
