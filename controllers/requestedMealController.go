package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahatfaruk/pha12-meals-track-server/database"
	"github.com/rahatfaruk/pha12-meals-track-server/helper"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

// RequestedMeals lists a user's claims without pagination.
func (c *Controller) RequestedMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	reqMeals, err := c.store.RequestedMealsByEmail(ctx, mux.Vars(r)["email"])
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, reqMeals)
}

// MyRequestedMeals pages through the requester's claims and joins the
// referenced meals with a dependent second query.
func (c *Controller) MyRequestedMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	email := mux.Vars(r)["email"]
	page := helper.ParsePagination(r)

	reqMeals, total, err := c.store.RequestedMealsByEmailPaged(ctx, email, page.Skip(), int64(page.Limit))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	meals, err := c.store.MealsByIDs(ctx, requestedMealIDs(reqMeals))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"meals":      meals,
		"myReqMeals": reqMeals,
		"totalPages": helper.TotalPages(total, page.Limit),
	})
}

// ServeMeals is the admin delivery queue: all requested meals with
// optional requester filters, plus the referenced meal titles.
func (c *Controller) ServeMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	filter := database.UserFilter{
		Email:    r.URL.Query().Get("email"),
		Username: r.URL.Query().Get("username"),
	}
	page := helper.ParsePagination(r)

	reqMeals, total, err := c.store.ListRequestedMeals(ctx, filter, page.Skip(), int64(page.Limit))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	meals, err := c.store.MealsByIDs(ctx, requestedMealIDs(reqMeals))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reqMeals":   reqMeals,
		"meals":      meals,
		"totalPages": helper.TotalPages(total, page.Limit),
	})
}

// AddRequestedMeal records a claim; status always starts pending.
func (c *Controller) AddRequestedMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var reqMeal models.RequestedMeal
	if !c.decodeBody(w, r, &reqMeal) {
		return
	}
	reqMeal.Status = models.StatusPending

	insertedID, err := c.store.InsertRequestedMeal(ctx, &reqMeal)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": insertedID})
}

// UpdateServeMeal marks a claim delivered.
func (c *Controller) UpdateServeMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	if err := c.store.MarkRequestedMealDelivered(ctx, mux.Vars(r)["reqMealId"]); err != nil {
		c.storeError(w, r, err, "Requested meal not found")
		return
	}

	writeMessage(w, http.StatusOK, "requested meal delivered")
}

func (c *Controller) DeleteRequestedMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	if err := c.store.DeleteRequestedMeal(ctx, mux.Vars(r)["id"]); err != nil {
		c.storeError(w, r, err, "Requested meal not found")
		return
	}

	writeMessage(w, http.StatusOK, "requested meal deleted")
}

func requestedMealIDs(reqMeals []models.RequestedMeal) []string {
	ids := make([]string, 0, len(reqMeals))
	for _, reqMeal := range reqMeals {
		ids = append(ids, reqMeal.MealID)
	}
	return ids
}
