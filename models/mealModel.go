package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Meal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string             `bson:"title" json:"title" validate:"required,min=2,max=100"`
	Category     string             `bson:"category" json:"category" validate:"required,oneof=breakfast lunch dinner"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Ingredients  []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	PostTime     time.Time          `bson:"post_time" json:"post_time"`
	Likes        int64              `bson:"likes" json:"likes"`
	ReviewsCount int64              `bson:"reviews_count" json:"reviews_count"`
	AdminName    string             `bson:"admin_name,omitempty" json:"admin_name,omitempty"`
	AdminEmail   string             `bson:"admin_email" json:"admin_email" validate:"required,email"`
}

// MealSummary is the projected shape used when meals are joined
// against reviews or requested meals by id.
type MealSummary struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Likes        int64              `bson:"likes,omitempty" json:"likes,omitempty"`
	ReviewsCount int64              `bson:"reviews_count,omitempty" json:"reviews_count,omitempty"`
}
