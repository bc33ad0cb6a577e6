package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when a caller-supplied id is not a
	// 24-character hex object id.
	ErrInvalidID = errors.New("invalid document id")
)

// UserFilter narrows user-shaped listings; both fields are
// case-insensitive substring matches.
type UserFilter struct {
	Email    string
	Username string
}

// MealFilter narrows the public meal search.
type MealFilter struct {
	Search   string
	Category string
	PriceMin *float64
	PriceMax *float64
}

// Store is the single storage dependency handed to handlers. One
// method per (collection, operation) pair; no handler touches a
// collection directly.
type Store interface {
	// users
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
	ListUsers(ctx context.Context, filter UserFilter, skip, limit int64) ([]models.User, int64, error)
	SetUserBadge(ctx context.Context, email, badge string) error
	PromoteToAdmin(ctx context.Context, id string) error

	// meals
	HomepageMeals(ctx context.Context) ([]models.Meal, error)
	SearchMeals(ctx context.Context, filter MealFilter) ([]models.Meal, error)
	GetMeal(ctx context.Context, id string) (*models.Meal, error)
	InsertMeal(ctx context.Context, meal *models.Meal) (string, error)
	ListMeals(ctx context.Context, skip, limit int64) ([]models.Meal, int64, error)
	MealsByIDs(ctx context.Context, ids []string) ([]models.MealSummary, error)
	CountMealsByAdmin(ctx context.Context, adminEmail string) (int64, error)
	IncrementMealLikes(ctx context.Context, id string) error
	DeleteMeal(ctx context.Context, id string) (int64, error)

	// reviews
	ReviewsByMeal(ctx context.Context, mealID string) ([]models.Review, error)
	ReviewsByReviewer(ctx context.Context, email string, skip, limit int64) ([]models.Review, int64, error)
	ListReviews(ctx context.Context, skip, limit int64) ([]models.Review, int64, error)
	InsertReview(ctx context.Context, review *models.Review) (string, error)
	UpdateReview(ctx context.Context, id, text string) error
	DeleteReview(ctx context.Context, id string) error

	// requested meals
	RequestedMealsByEmail(ctx context.Context, email string) ([]models.RequestedMeal, error)
	RequestedMealsByEmailPaged(ctx context.Context, email string, skip, limit int64) ([]models.RequestedMeal, int64, error)
	ListRequestedMeals(ctx context.Context, filter UserFilter, skip, limit int64) ([]models.RequestedMeal, int64, error)
	InsertRequestedMeal(ctx context.Context, reqMeal *models.RequestedMeal) (string, error)
	MarkRequestedMealDelivered(ctx context.Context, id string) error
	DeleteRequestedMeal(ctx context.Context, id string) error

	// upcoming meals
	ListUpcomingMeals(ctx context.Context) ([]models.UpcomingMeal, error)
	GetUpcomingMeal(ctx context.Context, id string) (*models.UpcomingMeal, error)
	ListUpcomingMealsByLikes(ctx context.Context, skip, limit int64) ([]models.UpcomingMeal, int64, error)
	InsertUpcomingMeal(ctx context.Context, meal *models.UpcomingMeal) (string, error)
	IncrementUpcomingMealLikes(ctx context.Context, id string) error
	DeleteUpcomingMeal(ctx context.Context, id string) error

	// pricing plans
	ListPricingPlans(ctx context.Context) ([]models.PricingPlan, error)
	PricingPlanByName(ctx context.Context, name string) (*models.PricingPlan, error)

	// payments
	InsertPayment(ctx context.Context, payment *models.Payment) (string, error)
	PaymentsByEmail(ctx context.Context, email string, skip, limit int64) ([]models.Payment, int64, error)

	// likes
	AddLike(ctx context.Context, email, mealID string) (bool, error)
}

var _ Store = (*MongoStore)(nil)

// MongoStore implements Store on top of a single mongo database.
type MongoStore struct {
	users          *mongo.Collection
	meals          *mongo.Collection
	reviews        *mongo.Collection
	requestedMeals *mongo.Collection
	upcomingMeals  *mongo.Collection
	pricingPlans   *mongo.Collection
	payments       *mongo.Collection
	likes          *mongo.Collection
}

func NewStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		users:          db.Collection("users"),
		meals:          db.Collection("meals"),
		reviews:        db.Collection("reviews"),
		requestedMeals: db.Collection("requested-meals"),
		upcomingMeals:  db.Collection("upcoming-meals"),
		pricingPlans:   db.Collection("pricing-plan"),
		payments:       db.Collection("payments"),
		likes:          db.Collection("likes"),
	}
}

func insertedHex(result *mongo.InsertOneResult) string {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

func regexI(pattern string) primitive.Regex {
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

// findAll runs a Find and decodes the full cursor. A nil result is
// normalized to an empty slice so handlers always encode a JSON array.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

// findPage is findAll plus the separate count query the offset
// pagination contract requires on every call.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter any, skip, limit int64, opts ...*options.FindOptions) ([]T, int64, error) {
	opts = append(opts, options.Find().SetSkip(skip).SetLimit(limit))
	docs, err := findAll[T](ctx, coll, filter, opts...)
	if err != nil {
		return nil, 0, err
	}
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// objectIDs converts meal-id strings for $in queries, skipping any
// malformed entries the same way the referencing documents tolerate
// dangling meal ids.
func objectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}
