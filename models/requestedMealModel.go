package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
)

// RequestedMeal is a user's claim against a meal, with its own
// delivery-status lifecycle.
type RequestedMeal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	MealID      string             `bson:"meal_id" json:"meal_id" validate:"required,len=24,hexadecimal"`
	Status      string             `bson:"status" json:"status"`
}
