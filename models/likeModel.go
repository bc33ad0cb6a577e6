package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like records a single vote; the (email, meal_id) pair is unique.
type Like struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email" validate:"required,email"`
	MealID string             `bson:"meal_id" json:"meal_id" validate:"required,len=24,hexadecimal"`
}
