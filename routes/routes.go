package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/rahatfaruk/pha12-meals-track-server/controllers"
	"github.com/rahatfaruk/pha12-meals-track-server/helper"
	middleware "github.com/rahatfaruk/pha12-meals-track-server/middlewares"
)

type route struct {
	method  string
	path    string
	handler http.HandlerFunc
	guards  []middleware.Guard
}

// Register declares the whole route surface in one table so the auth,
// admin and ownership policies are visible per-route instead of being
// copy-pasted into handlers.
func Register(router *mux.Router, c *controller.Controller, tokens *helper.TokenService, users middleware.UserFinder) {
	verify := middleware.Authentication(tokens)
	admin := middleware.AdminOnly(users)
	ownerQuery := func(param string) middleware.Guard {
		return middleware.RequireOwner(middleware.OwnerFromQuery(param))
	}
	ownerPath := func(param string) middleware.Guard {
		return middleware.RequireOwner(middleware.OwnerFromPath(param))
	}

	table := []route{
		// public reads
		{http.MethodGet, "/", c.Welcome, nil},
		{http.MethodGet, "/homepage-meals", c.HomepageMeals, nil},
		{http.MethodGet, "/meals", c.SearchMeals, nil},
		{http.MethodGet, "/meals/{id}", c.GetMeal, nil},
		{http.MethodGet, "/pricing-plan", c.PricingPlans, nil},
		{http.MethodGet, "/upcoming-meals", c.UpcomingMeals, nil},
		{http.MethodGet, "/upcoming-meals/{id}", c.GetUpcomingMeal, nil},
		{http.MethodGet, "/reviews/{meal_id}", c.ReviewsByMeal, nil},
		{http.MethodGet, "/users/{email}", c.GetUser, nil},
		{http.MethodGet, "/all-meals", c.GetAllMeals, nil},
		{http.MethodGet, "/all-upcoming-meals", c.GetAllUpcomingMeals, nil},
		{http.MethodGet, "/generate-jwt", c.GenerateJWT, nil},

		// user dashboard
		{http.MethodGet, "/requested-meals/{email}", c.RequestedMeals, guards(verify, ownerPath("email"))},
		{http.MethodGet, "/my-reviews/{email}", c.MyReviews, guards(verify, ownerPath("email"))},
		{http.MethodGet, "/my-requested-meals/{email}", c.MyRequestedMeals, guards(verify, ownerPath("email"))},
		{http.MethodGet, "/my-payments/{email}", c.MyPayments, guards(verify, ownerPath("email"))},
		{http.MethodGet, "/my-meals-count/{email}", c.MyMealsCount, guards(verify, ownerPath("email"))},

		// admin dashboard
		{http.MethodGet, "/all-users", c.GetAllUsers, guards(verify, admin, ownerQuery("userEmail"))},
		{http.MethodGet, "/all-reviews", c.GetAllReviews, guards(verify, admin, ownerQuery("userEmail"))},
		{http.MethodGet, "/serve-meals", c.ServeMeals, guards(verify, admin, ownerQuery("userEmail"))},

		// writes
		{http.MethodPost, "/create-user", c.CreateUser, nil},
		// owner writes where the owner email rides in the body take it
		// from the verified claim inside the handler instead
		{http.MethodPost, "/add-review", c.AddReview, guards(verify)},
		{http.MethodPost, "/add-requested-meal", c.AddRequestedMeal, guards(verify, ownerQuery("email"))},
		{http.MethodPost, "/add-user-like", c.AddUserLike, guards(verify, ownerQuery("email"))},
		{http.MethodPost, "/store-payment-info", c.StorePaymentInfo, guards(verify)},
		{http.MethodPost, "/create-payment-intent", c.CreatePaymentIntent, guards(verify)},
		{http.MethodPost, "/add-meal", c.AddMeal, guards(verify, ownerQuery("email"))},
		{http.MethodPost, "/add-upcoming-meal", c.AddUpcomingMeal, guards(verify, admin, ownerQuery("email"))},

		{http.MethodPatch, "/inc-meal-like", c.IncMealLike, guards(verify, ownerQuery("email"))},
		{http.MethodPatch, "/inc-upcoming-meal-like", c.IncUpcomingMealLike, guards(verify, ownerQuery("email"))},
		{http.MethodPatch, "/update-user", c.UpdateUserBadge, guards(verify, ownerQuery("email"))},
		{http.MethodPatch, "/update-review/{id}", c.UpdateReview, guards(verify, ownerQuery("email"))},
		{http.MethodPatch, "/make-admin/{id}", c.MakeAdmin, guards(verify, admin, ownerQuery("email"))},
		{http.MethodPatch, "/update-serve-meal/{reqMealId}", c.UpdateServeMeal, guards(verify, admin, ownerQuery("email"))},

		{http.MethodDelete, "/delete-requested-meal/{id}", c.DeleteRequestedMeal, guards(verify, ownerQuery("email"))},
		{http.MethodDelete, "/delete-review/{id}", c.DeleteReview, guards(verify, ownerQuery("email"))},
		{http.MethodDelete, "/delete-meal/{id}", c.DeleteMeal, guards(verify, admin, ownerQuery("email"))},
		// admins may clear anyone's upcoming meal; the one route
		// without an ownership requirement on purpose
		{http.MethodDelete, "/delete-upcoming-meal/{id}", c.DeleteUpcomingMeal, guards(verify, admin)},
		{http.MethodDelete, "/delete-my-upcoming-meal/{id}", c.DeleteUpcomingMeal, guards(verify, ownerQuery("email"))},
	}

	for _, rt := range table {
		router.Handle(rt.path, middleware.Chain(rt.handler, rt.guards...)).Methods(rt.method)
	}
}

func guards(gs ...middleware.Guard) []middleware.Guard {
	return gs
}
