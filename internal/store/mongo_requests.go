package store

import (
	"context"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- reviews ---

func (s *MongoStore) ListReviewsByMarriageDate(ctx context.Context, limit int64) ([]models.Review, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.D{{Key: "parsedDate", Value: bson.D{{Key: "$dateFromString", Value: bson.D{
			{Key: "dateString", Value: "$marriage_date"},
			{Key: "format", Value: "%m-%d-%Y"},
			{Key: "onError", Value: nil},
			{Key: "onNull", Value: nil},
		}}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "parsedDate", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	col := s.col(ColReviews)
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapError("aggregate "+col.Name(), err)
	}
	defer cursor.Close(ctx)

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, wrapError("decode "+col.Name(), err)
	}
	return reviews, nil
}

func (s *MongoStore) EstimatedReviewCount(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, s.col(ColReviews))
}

// --- contact requests ---

func (s *MongoStore) ListContactRequests(ctx context.Context) ([]models.ContactRequest, error) {
	return findMany[models.ContactRequest](ctx, s.col(ColContactRequests), bson.M{})
}

func (s *MongoStore) ListContactRequestsByEmail(ctx context.Context, email string) ([]models.ContactRequest, error) {
	return findMany[models.ContactRequest](ctx, s.col(ColContactRequests), bson.M{"email": email})
}

func (s *MongoStore) InsertContactRequest(ctx context.Context, r *models.ContactRequest) (models.InsertResult, error) {
	return insertOne(ctx, s.col(ColContactRequests), r)
}

func (s *MongoStore) ApproveContactRequest(ctx context.Context, email string) (models.UpdateResult, error) {
	return updateOne(ctx, s.col(ColContactRequests), bson.M{"email": email}, bson.M{"$set": bson.M{"status": models.StatusApproved}})
}

func (s *MongoStore) DeleteContactRequest(ctx context.Context, biodataID, email string) (models.DeleteResult, error) {
	filter := bson.M{"biodataId": biodataID}
	if email != "" {
		filter["email"] = email
	}
	return deleteOne(ctx, s.col(ColContactRequests), filter)
}

func (s *MongoStore) EstimatedContactRequestCount(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, s.col(ColContactRequests))
}

// --- favourites ---

func (s *MongoStore) ListFavouritesByEmail(ctx context.Context, email string) ([]models.Favourite, error) {
	return findMany[models.Favourite](ctx, s.col(ColFavourites), bson.M{"email": email})
}

func (s *MongoStore) InsertFavourite(ctx context.Context, f *models.Favourite) (models.InsertResult, error) {
	return insertOne(ctx, s.col(ColFavourites), f)
}

func (s *MongoStore) DeleteFavourite(ctx context.Context, biodataID int, email string) (models.DeleteResult, error) {
	filter := bson.M{"biodataId": biodataID}
	if email != "" {
		filter["email"] = email
	}
	return deleteOne(ctx, s.col(ColFavourites), filter)
}

// --- premium requests ---

func (s *MongoStore) ListPremiumRequests(ctx context.Context) ([]models.PremiumRequest, error) {
	return findMany[models.PremiumRequest](ctx, s.col(ColPremiumRequests), bson.M{})
}

func (s *MongoStore) InsertPremiumRequest(ctx context.Context, r *models.PremiumRequest) (models.InsertResult, error) {
	return insertOne(ctx, s.col(ColPremiumRequests), r)
}

func (s *MongoStore) ApprovePremiumRequest(ctx context.Context, email string) (models.UpdateResult, error) {
	return updateOne(ctx, s.col(ColPremiumRequests), bson.M{"email": email}, bson.M{"$set": bson.M{"status": models.StatusApproved}})
}
