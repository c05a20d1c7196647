package store

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// testMongoStore connects to MONGO_TEST_URI (default localhost) and uses a
// throwaway database. The test is skipped when MongoDB is not reachable.
func testMongoStore(t *testing.T) *MongoStore {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	s, err := NewMongoStore(ctx, uri, "fair_marriage_test")
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := s.Database().Drop(context.Background()); err != nil {
		t.Fatalf("Failed to drop test database: %v", err)
	}
	if err := s.ensureIndexes(context.Background()); err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}

	t.Cleanup(func() {
		s.Database().Drop(context.Background())
		s.Close(context.Background())
	})
	return s
}

func TestMongoNextBioID(t *testing.T) {
	s := testMongoStore(t)
	ctx := context.Background()

	id, err := s.NextBioID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	// A profile written without the counter (e.g. imported data) moves it forward.
	_, err = s.col(ColBiodatas).InsertOne(ctx, bson.M{"bioId": 10, "name": "imported"})
	require.NoError(t, err)

	id, err = s.NextBioID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, id)

	id, err = s.NextBioID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, id)
}

func TestMongoNextBioIDConcurrent(t *testing.T) {
	s := testMongoStore(t)
	ctx := context.Background()

	const n = 20
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.NextBioID(ctx)
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "bioId %d allocated twice", id)
		seen[id] = true
	}
}

func TestMongoBiodataCRUD(t *testing.T) {
	s := testMongoStore(t)
	ctx := context.Background()

	for i, b := range []models.Biodata{
		{Name: "A", BioType: "Female", Age: 31, Email: "a@x.com"},
		{Name: "B", BioType: "female", Age: 24, Email: "b@x.com"},
		{Name: "C", BioType: "Male", Age: 28, Email: "c@x.com"},
	} {
		b.BioID = i + 1
		res, err := s.InsertBiodata(ctx, &b)
		require.NoError(t, err)
		assert.NotNil(t, res.InsertedID)
	}

	_, err := s.InsertBiodata(ctx, &models.Biodata{BioID: 1, Name: "dup"})
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := s.GetBiodata(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "B", got.Name)

	missing, err := s.GetBiodata(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, missing)

	female, err := s.CountBiodatasByType(ctx, "female")
	require.NoError(t, err)
	assert.EqualValues(t, 2, female)

	exact, err := s.ListBiodatasByType(ctx, "Female", 3)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "A", exact[0].Name)

	featured, err := s.ListBiodatasByEmails(ctx, []string{"a@x.com", "c@x.com"}, 6)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "C", featured[0].Name)

	res, err := s.UpdateBiodata(ctx, 3, map[string]any{"occupation": "Engineer"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)
}

func TestMongoCreateUserIfAbsent(t *testing.T) {
	s := testMongoStore(t)
	ctx := context.Background()

	existing, res, err := s.CreateUserIfAbsent(ctx, &models.User{Email: "u@x.com", Name: "First"})
	require.NoError(t, err)
	assert.Nil(t, existing)
	assert.NotNil(t, res.InsertedID)

	existing, _, err = s.CreateUserIfAbsent(ctx, &models.User{Email: "u@x.com", Name: "Second"})
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "First", existing.Name)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMongoReviewsByMarriageDate(t *testing.T) {
	s := testMongoStore(t)
	ctx := context.Background()

	reviews, order := reviewFixture()
	docs := make([]any, 0, len(reviews))
	for _, r := range reviews {
		docs = append(docs, r)
	}
	_, err := s.col(ColReviews).InsertMany(ctx, docs)
	require.NoError(t, err)

	got, err := s.ListReviewsByMarriageDate(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, order, reviewNames(got))
	assert.Nil(t, got[0].ParsedDate)
	require.NotNil(t, got[2].ParsedDate)
	assert.Equal(t, time.March, got[2].ParsedDate.Month())
}

func TestMongoFavouritesAndRequests(t *testing.T) {
	s := testMongoStore(t)
	ctx := context.Background()

	_, err := s.InsertFavourite(ctx, &models.Favourite{Email: "a@x.com", BiodataID: 5})
	require.NoError(t, err)
	_, err = s.InsertFavourite(ctx, &models.Favourite{Email: "a@x.com", BiodataID: 6})
	require.NoError(t, err)

	del, err := s.DeleteFavourite(ctx, 5, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, del.DeletedCount)
	left, err := s.ListFavouritesByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, 6, left[0].BiodataID)

	_, err = s.InsertPremiumRequest(ctx, &models.PremiumRequest{Email: "p@x.com"})
	require.NoError(t, err)
	upd, err := s.ApprovePremiumRequest(ctx, "p@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, upd.ModifiedCount)

	_, err = s.InsertContactRequest(ctx, &models.ContactRequest{Email: "a@x.com", BiodataID: "6"})
	require.NoError(t, err)
	n, err := s.EstimatedContactRequestCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
