package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

func (s *MongoStore) ReviewsByMeal(ctx context.Context, mealID string) ([]models.Review, error) {
	return findAll[models.Review](ctx, s.reviews, bson.M{"meal_id": mealID})
}

func (s *MongoStore) ReviewsByReviewer(ctx context.Context, email string, skip, limit int64) ([]models.Review, int64, error) {
	return findPage[models.Review](ctx, s.reviews, bson.M{"reviewer_email": email}, skip, limit)
}

func (s *MongoStore) ListReviews(ctx context.Context, skip, limit int64) ([]models.Review, int64, error) {
	return findPage[models.Review](ctx, s.reviews, bson.M{}, skip, limit)
}

func (s *MongoStore) InsertReview(ctx context.Context, review *models.Review) (string, error) {
	if review.PostedAt.IsZero() {
		review.PostedAt = time.Now()
	}
	result, err := s.reviews.InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *MongoStore) UpdateReview(ctx context.Context, id, text string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.reviews.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"text": text}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteReview(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.reviews.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
