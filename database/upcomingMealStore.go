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

func (s *MongoStore) ListUpcomingMeals(ctx context.Context) ([]models.UpcomingMeal, error) {
	return findAll[models.UpcomingMeal](ctx, s.upcomingMeals, bson.M{})
}

func (s *MongoStore) GetUpcomingMeal(ctx context.Context, id string) (*models.UpcomingMeal, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var meal models.UpcomingMeal
	err = s.upcomingMeals.FindOne(ctx, bson.M{"_id": oid}).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListUpcomingMealsByLikes sorts by like count descending, the order
// the publish queue is reviewed in.
func (s *MongoStore) ListUpcomingMealsByLikes(ctx context.Context, skip, limit int64) ([]models.UpcomingMeal, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "likes", Value: -1}})
	return findPage[models.UpcomingMeal](ctx, s.upcomingMeals, bson.M{}, skip, limit, opts)
}

func (s *MongoStore) InsertUpcomingMeal(ctx context.Context, meal *models.UpcomingMeal) (string, error) {
	if meal.PostTime.IsZero() {
		meal.PostTime = time.Now()
	}
	result, err := s.upcomingMeals.InsertOne(ctx, meal)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *MongoStore) IncrementUpcomingMealLikes(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.upcomingMeals.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"likes": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteUpcomingMeal(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.upcomingMeals.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
