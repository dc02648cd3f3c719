package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/oseayemenre/pathagar/internal/models"
	"github.com/oseayemenre/pathagar/internal/store"
)

var (
	errInternal         = errors.New("internal server error")
	errStoreUnavailable = errors.New("store unavailable")
)

func respondWithSuccess(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, code int, err error) {
	respondWithSuccess(w, code, models.ErrorResponse{Error: err.Error()})
}

func decodeJson(r *http.Request, params any) error {
	if err := json.NewDecoder(r.Body).Decode(params); err != nil {
		return fmt.Errorf("error decoding json: %v", err)
	}
	return nil
}

// decodeAndValidate decodes the json body into params and checks its
// required fields, writing a 400 on failure.
func (a *Api) decodeAndValidate(w http.ResponseWriter, r *http.Request, params any, service string) bool {
	if err := decodeJson(r, params); err != nil {
		a.logger.Warn(err.Error(), "service", service)
		respondWithError(w, http.StatusBadRequest, err)
		return false
	}

	if err := validate.Struct(params); err != nil {
		a.logger.Warn(fmt.Sprintf("validation error: %v", err), "service", service)
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("validation error: %v", err))
		return false
	}

	return true
}

func (a *Api) respondWithStoreError(w http.ResponseWriter, err error, service string) {
	switch {
	case errors.Is(err, store.ErrInvalidId):
		a.logger.Warn(err.Error(), "service", service)
		respondWithError(w, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrUnavailable):
		a.logger.Error(err.Error(), "service", service)
		respondWithError(w, http.StatusServiceUnavailable, errStoreUnavailable)
	default:
		a.logger.Error(err.Error(), "service", service)
		respondWithError(w, http.StatusInternalServerError, errInternal)
	}
}

func (a *Api) requireQuery(w http.ResponseWriter, r *http.Request, key string, service string) (string, bool) {
	val := r.URL.Query().Get(key)

	if val == "" {
		a.logger.Warn(fmt.Sprintf("%s query parameter is required", key), "service", service)
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("%s query parameter is required", key))
		return "", false
	}

	return val, true
}
