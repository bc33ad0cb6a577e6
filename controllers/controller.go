package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rahatfaruk/pha12-meals-track-server/database"
	"github.com/rahatfaruk/pha12-meals-track-server/helper"
)

const requestTimeout = 10 * time.Second

// Controller holds every dependency the handlers share. All state is
// injected at startup; there are no package-level collection handles.
type Controller struct {
	store    database.Store
	tokens   *helper.TokenService
	payments helper.IntentCreator
	validate *validator.Validate
	logger   *slog.Logger
}

func New(store database.Store, tokens *helper.TokenService, payments helper.IntentCreator, logger *slog.Logger) *Controller {
	return &Controller{
		store:    store,
		tokens:   tokens,
		payments: payments,
		validate: validator.New(),
		logger:   logger,
	}
}

func handlerContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// storeError maps a storage failure to an explicit response; nothing
// is left to a framework fallback.
func (c *Controller) storeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, database.ErrInvalidID):
		writeMessage(w, http.StatusBadRequest, "invalid id")
	case errors.Is(err, database.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFoundMsg)
	default:
		c.logger.Error("database error", "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody decodes and validates a JSON request body, answering 400
// itself on failure.
func (c *Controller) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := c.validate.Struct(v); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
