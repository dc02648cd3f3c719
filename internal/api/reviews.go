package api

import (
	"net/http"

	"github.com/oseayemenre/pathagar/internal/models"
)

// HandleCreateReview godoc
//
//	@Summary		Add review
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		models.Review	true	"review"
//	@Success		200		{object}	models.InsertAck
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/reviews [post]
func (a *Api) HandleCreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review

	if !a.decodeAndValidate(w, r, &review, "HandleCreateReview") {
		return
	}

	ack, err := a.store.CreateReview(r.Context(), &review)

	if err != nil {
		a.respondWithStoreError(w, err, "HandleCreateReview")
		return
	}

	respondWithSuccess(w, http.StatusOK, ack)
}

// HandleGetReviews godoc
//
//	@Summary		Get reviews
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{array}		models.Review
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/reviews [get]
func (a *Api) HandleGetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := a.store.GetReviews(r.Context())

	if err != nil {
		a.respondWithStoreError(w, err, "HandleGetReviews")
		return
	}

	respondWithSuccess(w, http.StatusOK, reviews)
}
