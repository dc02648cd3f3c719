package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/store"
)

// HandleCreateUser godoc
//
//	@Summary		Save user
//	@Description	Saves a signed-in user. Every new user starts with the ordinary role
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.User	true	"user"
//	@Success		200		{object}	models.InsertAck
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/users [post]
func (a *Api) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User

	if !a.decodeAndValidate(w, r, &user, "HandleCreateUser") {
		return
	}

	user.Role = models.RoleOrdinary

	ack, err := a.store.CreateUser(r.Context(), &user)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleCreateUser")
		return
	}

	respondWithSuccess(w, http.StatusOK, ack)
}

// HandleGetUsers godoc
//
//	@Summary		Get users
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		models.User
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/users [get]
func (a *Api) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.store.GetUsers(r.Context())

	if err != nil {
		a.respondWithStoreError(w, err, "HandleGetUsers")
		return
	}

	respondWithSuccess(w, http.StatusOK, users)
}

// HandleGetUsersByEmail godoc
//
//	@Summary		Get users by email
//	@Tags			users
//	@Produce		json
//	@Param			email	query		string	true	"email"
//	@Success		200		{array}		models.User
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/user [get]
func (a *Api) HandleGetUsersByEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := a.requireQuery(w, r, "email", "HandleGetUsersByEmail")

	if !ok {
		return
	}

	users, err := a.store.GetUsersByEmail(r.Context(), email)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleGetUsersByEmail")
		return
	}

	respondWithSuccess(w, http.StatusOK, users)
}

// HandleCheckAdmin godoc
//
//	@Summary		Check admin
//	@Description	Reports whether the user with the email has the admin role
//	@Tags			users
//	@Produce		json
//	@Param			email	path		string	true	"email"
//	@Success		200		{object}	models.HandleCheckAdminResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/users/{email} [get]
func (a *Api) HandleCheckAdmin(w http.ResponseWriter, r *http.Request) {
	user, err := a.store.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))

	if err != nil && !errors.Is(err, store.ErrNotFound) {
		a.respondWithStoreError(w, err, "HandleCheckAdmin")
		return
	}

	respondWithSuccess(w, http.StatusOK, &models.HandleCheckAdminResponse{Admin: user.IsAdmin()})
}

// HandleMakeAdmin godoc
//
//	@Summary		Make admin
//	@Description	Gives the admin role to the user with the email. Unknown emails are a no-op
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.HandleMakeAdminRequest	true	"email"
//	@Success		200		{object}	models.UpdateAck
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/users/admin [put]
func (a *Api) HandleMakeAdmin(w http.ResponseWriter, r *http.Request) {
	var params models.HandleMakeAdminRequest

	if !a.decodeAndValidate(w, r, &params, "HandleMakeAdmin") {
		return
	}

	ack, err := a.store.MakeAdmin(r.Context(), params.Email)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleMakeAdmin")
		return
	}

	respondWithSuccess(w, http.StatusOK, ack)
}
