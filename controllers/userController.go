package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahatfaruk/pha12-meals-track-server/database"
	"github.com/rahatfaruk/pha12-meals-track-server/helper"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

// GetUser returns a single user document by email.
func (c *Controller) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	email := mux.Vars(r)["email"]
	user, err := c.store.FindUserByEmail(ctx, email)
	if err != nil {
		c.storeError(w, r, err, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// CreateUser registers a signup: every new user starts with the bronze
// badge and the user rank.
func (c *Controller) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var user models.User
	if !c.decodeBody(w, r, &user) {
		return
	}

	user.Badge = models.BadgeBronze
	user.Rank = models.RankUser

	insertedID, err := c.store.CreateUser(ctx, &user)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": insertedID})
}

// GetAllUsers lists users with optional case-insensitive email and
// username filters, paginated.
func (c *Controller) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	filter := database.UserFilter{
		Email:    r.URL.Query().Get("email"),
		Username: r.URL.Query().Get("username"),
	}
	page := helper.ParsePagination(r)

	users, total, err := c.store.ListUsers(ctx, filter, page.Skip(), int64(page.Limit))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users":      users,
		"totalPages": helper.TotalPages(total, page.Limit),
	})
}

// UpdateUserBadge mutates the loyalty badge after a plan purchase.
func (c *Controller) UpdateUserBadge(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var body struct {
		Badge string `json:"badge" validate:"required"`
	}
	if !c.decodeBody(w, r, &body) {
		return
	}

	email := r.URL.Query().Get("email")
	if err := c.store.SetUserBadge(ctx, email, body.Badge); err != nil {
		c.storeError(w, r, err, "User not found")
		return
	}

	writeMessage(w, http.StatusOK, "user updated")
}

// MakeAdmin raises a user's rank; admin-gated at the route table.
func (c *Controller) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	id := mux.Vars(r)["id"]
	if err := c.store.PromoteToAdmin(ctx, id); err != nil {
		c.storeError(w, r, err, "User not found")
		return
	}

	writeMessage(w, http.StatusOK, "user promoted to admin")
}

// MyMealsCount reports how many meals the admin has published.
func (c *Controller) MyMealsCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	email := mux.Vars(r)["email"]
	count, err := c.store.CountMealsByAdmin(ctx, email)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}
