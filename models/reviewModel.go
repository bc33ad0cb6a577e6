package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID        string             `bson:"meal_id" json:"meal_id" validate:"required,len=24,hexadecimal"`
	ReviewerEmail string             `bson:"reviewer_email" json:"reviewer_email" validate:"required,email"`
	Text          string             `bson:"text" json:"text" validate:"required"`
	PostedAt      time.Time          `bson:"posted_at,omitempty" json:"posted_at,omitempty"`
}
