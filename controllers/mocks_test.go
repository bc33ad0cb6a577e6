package controller

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rahatfaruk/pha12-meals-track-server/database"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

// MockStore is a testify mock over the full storage interface.
type MockStore struct {
	mock.Mock
}

var _ database.Store = (*MockStore)(nil)

func (m *MockStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListUsers(ctx context.Context, filter database.UserFilter, skip, limit int64) ([]models.User, int64, error) {
	args := m.Called(ctx, filter, skip, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) SetUserBadge(ctx context.Context, email, badge string) error {
	return m.Called(ctx, email, badge).Error(0)
}

func (m *MockStore) PromoteToAdmin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) HomepageMeals(ctx context.Context) ([]models.Meal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockStore) SearchMeals(ctx context.Context, filter database.MealFilter) ([]models.Meal, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockStore) GetMeal(ctx context.Context, id string) (*models.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockStore) InsertMeal(ctx context.Context, meal *models.Meal) (string, error) {
	args := m.Called(ctx, meal)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListMeals(ctx context.Context, skip, limit int64) ([]models.Meal, int64, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]models.Meal), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) MealsByIDs(ctx context.Context, ids []string) ([]models.MealSummary, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.MealSummary), args.Error(1)
}

func (m *MockStore) CountMealsByAdmin(ctx context.Context, adminEmail string) (int64, error) {
	args := m.Called(ctx, adminEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) IncrementMealLikes(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) DeleteMeal(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) ReviewsByMeal(ctx context.Context, mealID string) ([]models.Review, error) {
	args := m.Called(ctx, mealID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockStore) ReviewsByReviewer(ctx context.Context, email string, skip, limit int64) ([]models.Review, int64, error) {
	args := m.Called(ctx, email, skip, limit)
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) ListReviews(ctx context.Context, skip, limit int64) ([]models.Review, int64, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) InsertReview(ctx context.Context, review *models.Review) (string, error) {
	args := m.Called(ctx, review)
	return args.String(0), args.Error(1)
}

func (m *MockStore) UpdateReview(ctx context.Context, id, text string) error {
	return m.Called(ctx, id, text).Error(0)
}

func (m *MockStore) DeleteReview(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) RequestedMealsByEmail(ctx context.Context, email string) ([]models.RequestedMeal, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.RequestedMeal), args.Error(1)
}

func (m *MockStore) RequestedMealsByEmailPaged(ctx context.Context, email string, skip, limit int64) ([]models.RequestedMeal, int64, error) {
	args := m.Called(ctx, email, skip, limit)
	return args.Get(0).([]models.RequestedMeal), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) ListRequestedMeals(ctx context.Context, filter database.UserFilter, skip, limit int64) ([]models.RequestedMeal, int64, error) {
	args := m.Called(ctx, filter, skip, limit)
	return args.Get(0).([]models.RequestedMeal), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) InsertRequestedMeal(ctx context.Context, reqMeal *models.RequestedMeal) (string, error) {
	args := m.Called(ctx, reqMeal)
	return args.String(0), args.Error(1)
}

func (m *MockStore) MarkRequestedMealDelivered(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) DeleteRequestedMeal(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListUpcomingMeals(ctx context.Context) ([]models.UpcomingMeal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.UpcomingMeal), args.Error(1)
}

func (m *MockStore) GetUpcomingMeal(ctx context.Context, id string) (*models.UpcomingMeal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpcomingMeal), args.Error(1)
}

func (m *MockStore) ListUpcomingMealsByLikes(ctx context.Context, skip, limit int64) ([]models.UpcomingMeal, int64, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]models.UpcomingMeal), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) InsertUpcomingMeal(ctx context.Context, meal *models.UpcomingMeal) (string, error) {
	args := m.Called(ctx, meal)
	return args.String(0), args.Error(1)
}

func (m *MockStore) IncrementUpcomingMealLikes(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) DeleteUpcomingMeal(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListPricingPlans(ctx context.Context) ([]models.PricingPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PricingPlan), args.Error(1)
}

func (m *MockStore) PricingPlanByName(ctx context.Context, name string) (*models.PricingPlan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingPlan), args.Error(1)
}

func (m *MockStore) InsertPayment(ctx context.Context, payment *models.Payment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

func (m *MockStore) PaymentsByEmail(ctx context.Context, email string, skip, limit int64) ([]models.Payment, int64, error) {
	args := m.Called(ctx, email, skip, limit)
	return args.Get(0).([]models.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) AddLike(ctx context.Context, email, mealID string) (bool, error) {
	args := m.Called(ctx, email, mealID)
	return args.Bool(0), args.Error(1)
}

// MockIntentCreator captures what the payment bridge sends upstream.
type MockIntentCreator struct {
	mock.Mock
}

func (m *MockIntentCreator) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}
