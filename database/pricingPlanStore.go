package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

func (s *MongoStore) ListPricingPlans(ctx context.Context) ([]models.PricingPlan, error) {
	return findAll[models.PricingPlan](ctx, s.pricingPlans, bson.M{})
}

func (s *MongoStore) PricingPlanByName(ctx context.Context, name string) (*models.PricingPlan, error) {
	var plan models.PricingPlan
	err := s.pricingPlans.FindOne(ctx, bson.M{"name": name}).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
