package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahatfaruk/pha12-meals-track-server/helper"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

func (c *Controller) UpcomingMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	meals, err := c.store.ListUpcomingMeals(ctx)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, meals)
}

func (c *Controller) GetUpcomingMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	meal, err := c.store.GetUpcomingMeal(ctx, mux.Vars(r)["id"])
	if err != nil {
		c.storeError(w, r, err, "Upcoming meal not found")
		return
	}

	writeJSON(w, http.StatusOK, meal)
}

// GetAllUpcomingMeals pages the publish queue, most liked first.
func (c *Controller) GetAllUpcomingMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	page := helper.ParsePagination(r)
	meals, total, err := c.store.ListUpcomingMealsByLikes(ctx, page.Skip(), int64(page.Limit))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"upcomingMeals": meals,
		"totalPages":    helper.TotalPages(total, page.Limit),
	})
}

func (c *Controller) AddUpcomingMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var meal models.UpcomingMeal
	if !c.decodeBody(w, r, &meal) {
		return
	}

	insertedID, err := c.store.InsertUpcomingMeal(ctx, &meal)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": insertedID})
}

func (c *Controller) IncUpcomingMealLike(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var body struct {
		MealID string `json:"meal_id" validate:"required,len=24,hexadecimal"`
	}
	if !c.decodeBody(w, r, &body) {
		return
	}

	if err := c.store.IncrementUpcomingMealLikes(ctx, body.MealID); err != nil {
		c.storeError(w, r, err, "Upcoming meal not found")
		return
	}

	writeMessage(w, http.StatusOK, "upcoming meal liked")
}

// DeleteUpcomingMeal serves both the admin route (delete anyone's) and
// the owner route; the difference is entirely in the route policy.
func (c *Controller) DeleteUpcomingMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	if err := c.store.DeleteUpcomingMeal(ctx, mux.Vars(r)["id"]); err != nil {
		c.storeError(w, r, err, "Upcoming meal not found")
		return
	}

	writeMessage(w, http.StatusOK, "upcoming meal deleted")
}
