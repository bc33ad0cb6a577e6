package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

func (s *MongoStore) RequestedMealsByEmail(ctx context.Context, email string) ([]models.RequestedMeal, error) {
	return findAll[models.RequestedMeal](ctx, s.requestedMeals, bson.M{"email": email})
}

func (s *MongoStore) RequestedMealsByEmailPaged(ctx context.Context, email string, skip, limit int64) ([]models.RequestedMeal, int64, error) {
	return findPage[models.RequestedMeal](ctx, s.requestedMeals, bson.M{"email": email}, skip, limit)
}

func (s *MongoStore) ListRequestedMeals(ctx context.Context, filter UserFilter, skip, limit int64) ([]models.RequestedMeal, int64, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = regexI(filter.Email)
	}
	if filter.Username != "" {
		query["displayName"] = regexI(filter.Username)
	}
	return findPage[models.RequestedMeal](ctx, s.requestedMeals, query, skip, limit)
}

func (s *MongoStore) InsertRequestedMeal(ctx context.Context, reqMeal *models.RequestedMeal) (string, error) {
	if reqMeal.Status == "" {
		reqMeal.Status = models.StatusPending
	}
	result, err := s.requestedMeals.InsertOne(ctx, reqMeal)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *MongoStore) MarkRequestedMealDelivered(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.requestedMeals.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": models.StatusDelivered}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteRequestedMeal(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.requestedMeals.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
