package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rahatfaruk/pha12-meals-track-server/database"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

func TestCreateUserStartsAtBronzeUserRank(t *testing.T) {
	store := new(MockStore)
	store.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@x.com" && u.Badge == models.BadgeBronze && u.Rank == models.RankUser
	})).Return("66b1f00000000000000000f2", nil).Once()
	c := newTestController(store, nil)

	r := httptest.NewRequest("POST", "/create-user",
		strings.NewReader(`{"email":"new@x.com","displayName":"New User","rank":"admin"}`))
	rec := httptest.NewRecorder()

	c.CreateUser(rec, r)

	// a caller-supplied rank is always overwritten
	assert.Equal(t, http.StatusCreated, rec.Code)
	store.AssertExpectations(t)
}

func TestGetUserNotFound(t *testing.T) {
	store := new(MockStore)
	store.On("FindUserByEmail", mock.Anything, "ghost@x.com").
		Return(nil, database.ErrNotFound).Once()
	c := newTestController(store, nil)

	r := httptest.NewRequest("GET", "/users/ghost@x.com", nil)
	r = mux.SetURLVars(r, map[string]string{"email": "ghost@x.com"})
	rec := httptest.NewRecorder()

	c.GetUser(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllUsersForwardsFilters(t *testing.T) {
	store := new(MockStore)
	store.On("ListUsers", mock.Anything,
		database.UserFilter{Email: "x.com", Username: "rahat"}, int64(0), int64(10)).
		Return([]models.User{{Email: "a@x.com"}}, int64(1), nil).Once()
	c := newTestController(store, nil)

	r := httptest.NewRequest("GET", "/all-users?email=x.com&username=rahat&userEmail=boss@x.com", nil)
	rec := httptest.NewRecorder()

	c.GetAllUsers(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, float64(1), body["totalPages"])
	store.AssertExpectations(t)
}
