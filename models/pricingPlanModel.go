package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricingPlan is read-only reference data; plan names double as the
// badge granted on purchase.
type PricingPlan struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Benefits []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
}
