package store

import (
	"context"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bioIDCounter = "bioId"

var byAgeAsc = bson.D{{Key: "age", Value: 1}}

func (s *MongoStore) ListBiodatas(ctx context.Context) ([]models.Biodata, error) {
	return findMany[models.Biodata](ctx, s.col(ColBiodatas), bson.M{})
}

func (s *MongoStore) ListBiodatasByEmails(ctx context.Context, emails []string, limit int64) ([]models.Biodata, error) {
	if len(emails) == 0 {
		return []models.Biodata{}, nil
	}
	opts := options.Find().SetSort(byAgeAsc).SetLimit(limit)
	return findMany[models.Biodata](ctx, s.col(ColBiodatas), bson.M{"email": bson.M{"$in": emails}}, opts)
}

func (s *MongoStore) ListBiodatasByType(ctx context.Context, bioType string, limit int64) ([]models.Biodata, error) {
	opts := options.Find().SetSort(byAgeAsc).SetLimit(limit)
	return findMany[models.Biodata](ctx, s.col(ColBiodatas), bson.M{"bioType": bioType}, opts)
}

func (s *MongoStore) GetBiodata(ctx context.Context, bioID int) (*models.Biodata, error) {
	return findOne[models.Biodata](ctx, s.col(ColBiodatas), bson.M{"bioId": bioID})
}

func (s *MongoStore) GetBiodataByEmail(ctx context.Context, email string) (*models.Biodata, error) {
	return findOne[models.Biodata](ctx, s.col(ColBiodatas), bson.M{"email": email})
}

// NextBioID reads the highest bioId through the index and then advances the
// counter document in one atomic update to max(counter, highest)+1. The max
// keeps the counter ahead of profiles inserted without it.
func (s *MongoStore) NextBioID(ctx context.Context) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "bioId", Value: -1}}).
		SetProjection(bson.M{"bioId": 1})
	last, err := findOne[models.Biodata](ctx, s.col(ColBiodatas), bson.M{}, opts)
	if err != nil {
		return 0, err
	}
	highest := 0
	if last != nil {
		highest = last.BioID
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "seq", Value: bson.D{{Key: "$add", Value: bson.A{
			bson.D{{Key: "$max", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$seq", 0}}},
				highest,
			}}},
			1,
		}}}}}}},
	}
	after := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err = s.col(ColCounters).FindOneAndUpdate(ctx, bson.M{"_id": bioIDCounter}, update, after).Decode(&counter)
	if err != nil {
		return 0, wrapError("advance bioId counter", err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) InsertBiodata(ctx context.Context, b *models.Biodata) (models.InsertResult, error) {
	return insertOne(ctx, s.col(ColBiodatas), b)
}

func (s *MongoStore) UpdateBiodata(ctx context.Context, bioID int, fields map[string]any) (models.UpdateResult, error) {
	return updateOne(ctx, s.col(ColBiodatas), bson.M{"bioId": bioID}, bson.M{"$set": fields})
}

func (s *MongoStore) EstimatedBiodataCount(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, s.col(ColBiodatas))
}

func (s *MongoStore) CountBiodatasByType(ctx context.Context, bioType string) (int64, error) {
	return countDocuments(ctx, s.col(ColBiodatas), bson.M{"bioType": caseInsensitive(bioType)})
}
