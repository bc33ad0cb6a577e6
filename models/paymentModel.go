package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed plan purchase.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	Amount        float64            `bson:"amount" json:"amount" validate:"gte=0"`
	Plan          string             `bson:"plan" json:"plan" validate:"required"`
	TransactionID string             `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
