package controller

import (
	"net/http"

	middleware "github.com/rahatfaruk/pha12-meals-track-server/middlewares"
)

// AddUserLike records a single vote per (email, meal) pair. A repeat
// attempt is acknowledged, not treated as an error, and leaves exactly
// one like behind. The email is taken from the verified claim, never
// from the body.
func (c *Controller) AddUserLike(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var body struct {
		MealID string `json:"meal_id" validate:"required,len=24,hexadecimal"`
	}
	if !c.decodeBody(w, r, &body) {
		return
	}

	email := middleware.EmailFromContext(r)
	created, err := c.store.AddLike(ctx, email, body.MealID)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":   "already liked this meal",
			"existLike": true,
		})
		return
	}

	writeMessage(w, http.StatusCreated, "meal liked")
}
