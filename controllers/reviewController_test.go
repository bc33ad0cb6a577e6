package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	middleware "github.com/rahatfaruk/pha12-meals-track-server/middlewares"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

func TestMyReviewsJoinsMeals(t *testing.T) {
	store := new(MockStore)
	reviews := []models.Review{
		{MealID: testMealID, ReviewerEmail: "a@x.com", Text: "great"},
		{MealID: "66b1f00000000000000000a2", ReviewerEmail: "a@x.com", Text: "fine"},
	}
	store.On("ReviewsByReviewer", mock.Anything, "a@x.com", int64(0), int64(10)).
		Return(reviews, int64(2), nil).Once()
	store.On("MealsByIDs", mock.Anything, []string{testMealID, "66b1f00000000000000000a2"}).
		Return([]models.MealSummary{{Title: "Salad"}, {Title: "Soup"}}, nil).Once()
	c := newTestController(store, nil)

	r := httptest.NewRequest("GET", "/my-reviews/a@x.com", nil)
	r = mux.SetURLVars(r, map[string]string{"email": "a@x.com"})
	rec := httptest.NewRecorder()

	c.MyReviews(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Len(t, body["reviews"], 2)
	assert.Len(t, body["meals"], 2)
	assert.Equal(t, float64(1), body["totalPages"])
	store.AssertExpectations(t)
}

func TestAddReviewUsesVerifiedIdentity(t *testing.T) {
	store := new(MockStore)
	store.On("InsertReview", mock.Anything, mock.MatchedBy(func(rv *models.Review) bool {
		// the body claimed someone else; the verified claim wins
		return rv.ReviewerEmail == "a@x.com" && rv.MealID == testMealID
	})).Return("66b1f00000000000000000c3", nil).Once()
	c := newTestController(store, nil)

	payload := `{"meal_id":"` + testMealID + `","reviewer_email":"other@x.com","text":"tasty"}`
	r := httptest.NewRequest("POST", "/add-review", strings.NewReader(payload))
	r = r.WithContext(middleware.WithEmail(r.Context(), "a@x.com"))
	rec := httptest.NewRecorder()

	c.AddReview(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	store.AssertExpectations(t)
}

func TestUpdateReviewRequiresText(t *testing.T) {
	store := new(MockStore)
	c := newTestController(store, nil)

	r := httptest.NewRequest("PATCH", "/update-review/"+testMealID, strings.NewReader(`{}`))
	r = mux.SetURLVars(r, map[string]string{"id": testMealID})
	rec := httptest.NewRecorder()

	c.UpdateReview(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything, mock.Anything)
}
