package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

func (s *MongoStore) InsertPayment(ctx context.Context, payment *models.Payment) (string, error) {
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	result, err := s.payments.InsertOne(ctx, payment)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *MongoStore) PaymentsByEmail(ctx context.Context, email string, skip, limit int64) ([]models.Payment, int64, error) {
	return findPage[models.Payment](ctx, s.payments, bson.M{"email": email}, skip, limit)
}
