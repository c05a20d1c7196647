package store

import (
	"context"
	"errors"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return findMany[models.User](ctx, s.col(ColUsers), bson.M{})
}

func (s *MongoStore) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	return findMany[models.User](ctx, s.col(ColUsers), bson.M{"role": role})
}

func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, s.col(ColUsers), bson.M{"email": email})
}

// CreateUserIfAbsent is a single upsert with $setOnInsert, so two concurrent
// sign-ups for one email cannot both insert.
func (s *MongoStore) CreateUserIfAbsent(ctx context.Context, u *models.User) (*models.User, models.InsertResult, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	onInsert := bson.M{"_id": u.ID}
	if u.Name != "" {
		onInsert["name"] = u.Name
	}
	if u.Photo != "" {
		onInsert["photo"] = u.Photo
	}
	if u.Role != "" {
		onInsert["role"] = u.Role
	}
	before := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)

	var existing models.User
	err := s.col(ColUsers).FindOneAndUpdate(ctx, bson.M{"email": u.Email}, bson.M{"$setOnInsert": onInsert}, before).Decode(&existing)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, models.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
	case err != nil:
		return nil, models.InsertResult{}, wrapError("upsert user", err)
	}
	return &existing, models.InsertResult{}, nil
}

func (s *MongoStore) SetUserRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	return updateOne(ctx, s.col(ColUsers), bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
}

func (s *MongoStore) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	return countDocuments(ctx, s.col(ColUsers), bson.M{"role": role})
}
