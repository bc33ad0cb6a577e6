package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

var homepageCategories = []string{"breakfast", "lunch", "dinner"}

// HomepageMeals returns the latest three meals of each category,
// newest first.
func (s *MongoStore) HomepageMeals(ctx context.Context) ([]models.Meal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "post_time", Value: -1}}).SetLimit(3)

	meals := []models.Meal{}
	for _, category := range homepageCategories {
		batch, err := findAll[models.Meal](ctx, s.meals, bson.M{"category": category}, opts)
		if err != nil {
			return nil, err
		}
		meals = append(meals, batch...)
	}
	return meals, nil
}

func (s *MongoStore) SearchMeals(ctx context.Context, filter MealFilter) ([]models.Meal, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["title"] = regexI(filter.Search)
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.PriceMin != nil && filter.PriceMax != nil {
		query["price"] = bson.M{"$gte": *filter.PriceMin, "$lte": *filter.PriceMax}
	}
	return findAll[models.Meal](ctx, s.meals, query)
}

func (s *MongoStore) GetMeal(ctx context.Context, id string) (*models.Meal, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var meal models.Meal
	err = s.meals.FindOne(ctx, bson.M{"_id": oid}).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// InsertMeal keeps a caller-supplied id so an upcoming meal keeps its
// identity when promoted into the catalog.
func (s *MongoStore) InsertMeal(ctx context.Context, meal *models.Meal) (string, error) {
	if meal.PostTime.IsZero() {
		meal.PostTime = time.Now()
	}
	result, err := s.meals.InsertOne(ctx, meal)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *MongoStore) ListMeals(ctx context.Context, skip, limit int64) ([]models.Meal, int64, error) {
	return findPage[models.Meal](ctx, s.meals, bson.M{}, skip, limit)
}

func (s *MongoStore) MealsByIDs(ctx context.Context, ids []string) ([]models.MealSummary, error) {
	query := bson.M{"_id": bson.M{"$in": objectIDs(ids)}}
	opts := options.Find().SetProjection(bson.M{"_id": 1, "title": 1, "likes": 1, "reviews_count": 1})
	return findAll[models.MealSummary](ctx, s.meals, query, opts)
}

func (s *MongoStore) CountMealsByAdmin(ctx context.Context, adminEmail string) (int64, error) {
	return s.meals.CountDocuments(ctx, bson.M{"admin_email": adminEmail})
}

// IncrementMealLikes relies on the server-side $inc so two concurrent
// likes against the same meal never lose an update.
func (s *MongoStore) IncrementMealLikes(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.meals.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"likes": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMeal removes the meal and then its reviews as a second,
// unlinked write. A crash between the two leaves orphaned reviews;
// accepted gap, no multi-document transaction is used.
func (s *MongoStore) DeleteMeal(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	result, err := s.meals.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	if _, err := s.reviews.DeleteMany(ctx, bson.M{"meal_id": id}); err != nil {
		return result.DeletedCount, err
	}
	return result.DeletedCount, nil
}
