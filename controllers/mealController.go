package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rahatfaruk/pha12-meals-track-server/database"
	"github.com/rahatfaruk/pha12-meals-track-server/helper"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

// HomepageMeals returns the latest three meals per category for the
// landing page.
func (c *Controller) HomepageMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	meals, err := c.store.HomepageMeals(ctx)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, meals)
}

// SearchMeals filters the catalog by title substring, category and
// price range, all optional.
func (c *Controller) SearchMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	query := r.URL.Query()
	filter := database.MealFilter{
		Search:   query.Get("searchText"),
		Category: query.Get("category"),
	}

	// the price range only applies when both bounds parse
	if lo, err := strconv.ParseFloat(query.Get("priceMin"), 64); err == nil {
		if hi, err := strconv.ParseFloat(query.Get("priceMax"), 64); err == nil {
			filter.PriceMin = &lo
			filter.PriceMax = &hi
		}
	}

	meals, err := c.store.SearchMeals(ctx, filter)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, meals)
}

func (c *Controller) GetMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	meal, err := c.store.GetMeal(ctx, mux.Vars(r)["id"])
	if err != nil {
		c.storeError(w, r, err, "Meal not found")
		return
	}

	writeJSON(w, http.StatusOK, meal)
}

// GetAllMeals lists the whole catalog, paginated.
func (c *Controller) GetAllMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	page := helper.ParsePagination(r)
	meals, total, err := c.store.ListMeals(ctx, page.Skip(), int64(page.Limit))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"meals":      meals,
		"totalPages": helper.TotalPages(total, page.Limit),
	})
}

// AddMeal publishes a meal. The body may carry an _id: promoting an
// upcoming meal keeps its identity so existing likes still point at it.
func (c *Controller) AddMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var meal models.Meal
	if !c.decodeBody(w, r, &meal) {
		return
	}

	insertedID, err := c.store.InsertMeal(ctx, &meal)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": insertedID})
}

// IncMealLike bumps a meal's like counter with a single atomic
// increment; no read-modify-write in application code.
func (c *Controller) IncMealLike(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var body struct {
		MealID string `json:"meal_id" validate:"required,len=24,hexadecimal"`
	}
	if !c.decodeBody(w, r, &body) {
		return
	}

	if err := c.store.IncrementMealLikes(ctx, body.MealID); err != nil {
		c.storeError(w, r, err, "Meal not found")
		return
	}

	writeMessage(w, http.StatusOK, "meal liked")
}

// DeleteMeal removes a meal and cascades to its reviews.
func (c *Controller) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	deleted, err := c.store.DeleteMeal(ctx, mux.Vars(r)["id"])
	if err != nil {
		c.storeError(w, r, err, "Meal not found")
		return
	}
	if deleted == 0 {
		writeMessage(w, http.StatusNotFound, "Meal not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
