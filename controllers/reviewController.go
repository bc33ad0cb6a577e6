package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahatfaruk/pha12-meals-track-server/helper"
	middleware "github.com/rahatfaruk/pha12-meals-track-server/middlewares"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

// ReviewsByMeal lists every review targeting one meal.
func (c *Controller) ReviewsByMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	reviews, err := c.store.ReviewsByMeal(ctx, mux.Vars(r)["meal_id"])
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// AddReview stores a review. The meal reference is best-effort; no
// foreign key is enforced by the store. The reviewer identity comes
// from the verified claim, never from the body.
func (c *Controller) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var review models.Review
	if !c.decodeBody(w, r, &review) {
		return
	}
	review.ReviewerEmail = middleware.EmailFromContext(r)

	insertedID, err := c.store.InsertReview(ctx, &review)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": insertedID})
}

// MyReviews pages through the requester's reviews and joins the
// referenced meals with a dependent second query. The two reads are
// not transactionally linked.
func (c *Controller) MyReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	email := mux.Vars(r)["email"]
	page := helper.ParsePagination(r)

	reviews, total, err := c.store.ReviewsByReviewer(ctx, email, page.Skip(), int64(page.Limit))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	meals, err := c.store.MealsByIDs(ctx, reviewMealIDs(reviews))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"meals":      meals,
		"reviews":    reviews,
		"totalPages": helper.TotalPages(total, page.Limit),
	})
}

// GetAllReviews is the admin view over every review, with the same
// dependent meal join.
func (c *Controller) GetAllReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	page := helper.ParsePagination(r)
	reviews, total, err := c.store.ListReviews(ctx, page.Skip(), int64(page.Limit))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	meals, err := c.store.MealsByIDs(ctx, reviewMealIDs(reviews))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reviews":    reviews,
		"meals":      meals,
		"totalPages": helper.TotalPages(total, page.Limit),
	})
}

func (c *Controller) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var body struct {
		Text string `json:"text" validate:"required"`
	}
	if !c.decodeBody(w, r, &body) {
		return
	}

	if err := c.store.UpdateReview(ctx, mux.Vars(r)["id"], body.Text); err != nil {
		c.storeError(w, r, err, "Review not found")
		return
	}

	writeMessage(w, http.StatusOK, "review updated")
}

func (c *Controller) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	if err := c.store.DeleteReview(ctx, mux.Vars(r)["id"]); err != nil {
		c.storeError(w, r, err, "Review not found")
		return
	}

	writeMessage(w, http.StatusOK, "review deleted")
}

func reviewMealIDs(reviews []models.Review) []string {
	ids := make([]string, 0, len(reviews))
	for _, review := range reviews {
		ids = append(ids, review.MealID)
	}
	return ids
}
