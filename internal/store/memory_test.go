package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryNextBioID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.NextBioID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id, "empty collection starts at 1")

	_, err = s.InsertBiodata(ctx, &models.Biodata{BioID: 41, Name: "imported"})
	require.NoError(t, err)

	id, err = s.NextBioID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, id, "allocation follows the highest stored bioId")

	// An id handed out but never inserted is not reused.
	id, err = s.NextBioID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 43, id)
}

func TestMemoryNextBioIDConcurrent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	const n = 50
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
	assert.Len(t, seen, n)
}

func TestMemoryInsertBiodataDuplicate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.InsertBiodata(ctx, &models.Biodata{BioID: 1})
	require.NoError(t, err)
	_, err = s.InsertBiodata(ctx, &models.Biodata{BioID: 1})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryBiodataQueries(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i, b := range []models.Biodata{
		{Name: "a", BioType: "Female", Age: 30, Email: "a@x.com"},
		{Name: "b", BioType: "Male", Age: 25, Email: "b@x.com"},
		{Name: "c", BioType: "female", Age: 22, Email: "c@x.com"},
		{Name: "d", BioType: "Female", Age: 27, Email: "d@x.com"},
		{Name: "e", BioType: "Female", Age: 19, Email: "e@x.com"},
		{Name: "f", BioType: "FEMALE", Age: 40, Email: "f@x.com"},
		{Name: "g", BioType: "", Age: 33, Email: "g@x.com"},
	} {
		b.BioID = i + 1
		_, err := s.InsertBiodata(ctx, &b)
		require.NoError(t, err)
	}

	t.Run("by type is exact and youngest first", func(t *testing.T) {
		got, err := s.ListBiodatasByType(ctx, "Female", 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"e", "d", "a"}, names(got))
	})

	t.Run("count by type ignores case", func(t *testing.T) {
		female, err := s.CountBiodatasByType(ctx, "female")
		require.NoError(t, err)
		assert.EqualValues(t, 5, female)

		male, err := s.CountBiodatasByType(ctx, "male")
		require.NoError(t, err)
		assert.EqualValues(t, 1, male, "male must not match female")
	})

	t.Run("by emails", func(t *testing.T) {
		got, err := s.ListBiodatasByEmails(ctx, []string{"a@x.com", "c@x.com", "nobody@x.com"}, 6)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a"}, names(got))

		got, err = s.ListBiodatasByEmails(ctx, nil, 6)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("get", func(t *testing.T) {
		got, err := s.GetBiodata(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "b", got.Name)

		got, err = s.GetBiodata(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = s.GetBiodataByEmail(ctx, "g@x.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 7, got.BioID)
	})
}

func TestMemoryUpdateBiodata(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_, err := s.InsertBiodata(ctx, &models.Biodata{BioID: 1, Name: "A", Age: 20})
	require.NoError(t, err)

	res, err := s.UpdateBiodata(ctx, 1, map[string]any{"name": "B", "age": 21})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.EqualValues(t, 1, res.ModifiedCount)

	got, _ := s.GetBiodata(ctx, 1)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, 21, got.Age)

	res, err = s.UpdateBiodata(ctx, 1, map[string]any{"name": "B"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.EqualValues(t, 0, res.ModifiedCount)

	res, err = s.UpdateBiodata(ctx, 7, map[string]any{"name": "C"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.MatchedCount)

	_, err = s.UpdateBiodata(ctx, 1, map[string]any{"bioId": 9})
	assert.Error(t, err)
	got, _ = s.GetBiodata(ctx, 1)
	assert.Equal(t, 1, got.BioID)
}

func TestMemoryCreateUserIfAbsent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	existing, res, err := s.CreateUserIfAbsent(ctx, &models.User{Email: "u@x.com", Name: "First"})
	require.NoError(t, err)
	assert.Nil(t, existing)
	assert.True(t, res.Acknowledged)
	assert.NotNil(t, res.InsertedID)

	existing, res, err = s.CreateUserIfAbsent(ctx, &models.User{Email: "u@x.com", Name: "Second"})
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "First", existing.Name)
	assert.Nil(t, res.InsertedID)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMemoryRolesAndRequests(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, email := range []string{"a@x.com", "b@x.com"} {
		_, _, err := s.CreateUserIfAbsent(ctx, &models.User{Email: email})
		require.NoError(t, err)
	}

	res, err := s.SetUserRole(ctx, "b@x.com", models.RolePremium)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)
	n, _ := s.CountUsersByRole(ctx, models.RolePremium)
	assert.EqualValues(t, 1, n)

	res, err = s.SetUserRole(ctx, "missing@x.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.MatchedCount)

	_, err = s.InsertContactRequest(ctx, &models.ContactRequest{Email: "a@x.com", BiodataID: "3"})
	require.NoError(t, err)
	_, err = s.InsertContactRequest(ctx, &models.ContactRequest{Email: "b@x.com", BiodataID: "3"})
	require.NoError(t, err)

	_, err = s.ApproveContactRequest(ctx, "b@x.com")
	require.NoError(t, err)
	all, _ := s.ListContactRequests(ctx)
	require.Len(t, all, 2)
	assert.Empty(t, all[0].Status)
	assert.Equal(t, models.StatusApproved, all[1].Status)

	del, err := s.DeleteContactRequest(ctx, "3", "b@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, del.DeletedCount)
	left, _ := s.ListContactRequestsByEmail(ctx, "a@x.com")
	assert.Len(t, left, 1)

	del, err = s.DeleteContactRequest(ctx, "4", "")
	require.NoError(t, err)
	assert.EqualValues(t, 0, del.DeletedCount)
}

func TestMemoryFavourites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, f := range []models.Favourite{
		{Email: "a@x.com", BiodataID: 5},
		{Email: "a@x.com", BiodataID: 6},
		{Email: "b@x.com", BiodataID: 5},
	} {
		_, err := s.InsertFavourite(ctx, &f)
		require.NoError(t, err)
	}

	res, err := s.DeleteFavourite(ctx, 5, "b@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.DeletedCount)

	a, _ := s.ListFavouritesByEmail(ctx, "a@x.com")
	assert.Len(t, a, 2)
	b, _ := s.ListFavouritesByEmail(ctx, "b@x.com")
	assert.Empty(t, b)
}

// reviewFixture is shared with the Mongo test so both stores are held to
// the same order: unparsable dates first, then by date.
func reviewFixture() ([]models.Review, []string) {
	reviews := []models.Review{
		{Name: "late", MarriageDate: "12-01-2023"},
		{Name: "early", MarriageDate: "01-15-2020"},
		{Name: "broken", MarriageDate: "2021/05/04"},
		{Name: "unpadded", MarriageDate: "3-7-2021"},
		{Name: "mid", MarriageDate: "06-30-2021"},
	}
	return reviews, []string{"broken", "early", "unpadded", "mid", "late"}
}

func reviewNames(reviews []models.Review) []string {
	names := make([]string, 0, len(reviews))
	for _, r := range reviews {
		names = append(names, r.Name)
	}
	return names
}

func TestMemoryReviewsByMarriageDate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	reviews, order := reviewFixture()
	s.SeedReviews(reviews...)

	got, err := s.ListReviewsByMarriageDate(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, order, reviewNames(got))
	assert.Nil(t, got[0].ParsedDate)
	require.NotNil(t, got[2].ParsedDate)
	assert.Equal(t, time.March, got[2].ParsedDate.Month())

	got, err = s.ListReviewsByMarriageDate(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, order[:3], reviewNames(got))

	n, _ := s.EstimatedReviewCount(ctx)
	assert.EqualValues(t, 5, n)
}

func TestMemoryClose(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close(context.Background()))
	assert.ErrorIs(t, s.Ping(context.Background()), ErrClosed)
}

func names(bs []models.Biodata) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Name
	}
	return out
}
