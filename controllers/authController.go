package controller

import (
	"net/http"
)

// Welcome answers the root health probe.
func (c *Controller) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome"))
}

// GenerateJWT mints a 3-hour token for the email given in the query.
// The endpoint is deliberately unauthenticated: it issues a valid
// credential for any email without proving ownership of it. The
// front end performs identity verification before calling here; this
// route is a trust boundary gap, not a security boundary.
func (c *Controller) GenerateJWT(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "email query param is required")
		return
	}

	token, err := c.tokens.Generate(email)
	if err != nil {
		c.logger.Error("token signing failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Write([]byte(token))
}
