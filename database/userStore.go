package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *MongoStore) ListUsers(ctx context.Context, filter UserFilter, skip, limit int64) ([]models.User, int64, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = regexI(filter.Email)
	}
	if filter.Username != "" {
		query["displayName"] = regexI(filter.Username)
	}
	return findPage[models.User](ctx, s.users, query, skip, limit)
}

func (s *MongoStore) SetUserBadge(ctx context.Context, email, badge string) error {
	result, err := s.users.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"badge": badge}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) PromoteToAdmin(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"rank": models.RankAdmin}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
