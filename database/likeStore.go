package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

// AddLike inserts a (email, meal_id) vote unless one already exists.
// It reports false, nil for a duplicate so the handler can acknowledge
// "already liked" instead of erroring.
func (s *MongoStore) AddLike(ctx context.Context, email, mealID string) (bool, error) {
	query := bson.M{"email": email, "meal_id": mealID}

	err := s.likes.FindOne(ctx, query).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	like := models.Like{Email: email, MealID: mealID}
	if _, err := s.likes.InsertOne(ctx, &like); err != nil {
		// a unique index on (email, meal_id) turns the find-then-insert
		// race into a duplicate-key error; treat it as already liked
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
