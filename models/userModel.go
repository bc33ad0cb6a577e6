package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Badge is the loyalty tier shown to the user; Rank is the privilege level.
// The two are independent attributes of the same document.
const (
	RankUser  = "user"
	RankAdmin = "admin"

	BadgeBronze = "bronze"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	DisplayName string             `bson:"displayName" json:"displayName" validate:"required,min=2,max=100"`
	Badge       string             `bson:"badge" json:"badge"`
	Rank        string             `bson:"rank" json:"rank"`
}
