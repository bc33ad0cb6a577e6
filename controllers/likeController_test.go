package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	middleware "github.com/rahatfaruk/pha12-meals-track-server/middlewares"
)

const testMealID = "66b1f00000000000000000a1"

func TestAddUserLikeFirstVote(t *testing.T) {
	store := new(MockStore)
	store.On("AddLike", mock.Anything, "a@x.com", testMealID).Return(true, nil).Once()
	c := newTestController(store, nil)

	r := httptest.NewRequest("POST", "/add-user-like?email=a@x.com",
		strings.NewReader(`{"meal_id":"`+testMealID+`"}`))
	r = r.WithContext(middleware.WithEmail(r.Context(), "a@x.com"))
	rec := httptest.NewRecorder()

	c.AddUserLike(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	store.AssertExpectations(t)
}

func TestAddUserLikeDuplicateIsAcknowledged(t *testing.T) {
	store := new(MockStore)
	store.On("AddLike", mock.Anything, "a@x.com", testMealID).Return(false, nil).Once()
	c := newTestController(store, nil)

	r := httptest.NewRequest("POST", "/add-user-like?email=a@x.com",
		strings.NewReader(`{"meal_id":"`+testMealID+`"}`))
	r = r.WithContext(middleware.WithEmail(r.Context(), "a@x.com"))
	rec := httptest.NewRecorder()

	c.AddUserLike(rec, r)

	// a repeat vote is an acknowledgment, not an error
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "already liked this meal", body["message"])
	assert.Equal(t, true, body["existLike"])
	store.AssertExpectations(t)
}

func TestAddUserLikeRejectsBadMealID(t *testing.T) {
	store := new(MockStore)
	c := newTestController(store, nil)

	r := httptest.NewRequest("POST", "/add-user-like?email=a@x.com",
		strings.NewReader(`{"meal_id":"nope"}`))
	r = r.WithContext(middleware.WithEmail(r.Context(), "a@x.com"))
	rec := httptest.NewRecorder()

	c.AddUserLike(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
}
