package services

import (
	"context"
	"testing"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"github.com/harentsoaR/fair-marriage-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsIncreasingBioIDs(t *testing.T) {
	s := store.NewMemoryStore()
	allocated := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_allocated"})
	svc := NewBiodataService(s, allocated)
	ctx := context.Background()

	last := 0
	for _, name := range []string{"A", "B", "C"} {
		res, err := svc.Create(ctx, &models.Biodata{Name: name})
		require.NoError(t, err)
		assert.Greater(t, res.BioID, last)
		assert.True(t, res.Acknowledged)
		last = res.BioID
	}
	assert.Equal(t, 3, last)
	assert.Equal(t, 3.0, testutil.ToFloat64(allocated))

	b, err := s.GetBiodata(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "B", b.Name)
}

func TestCreateIgnoresCallerBioID(t *testing.T) {
	s := store.NewMemoryStore()
	svc := NewBiodataService(s, nil)

	res, err := svc.Create(context.Background(), &models.Biodata{BioID: 500, Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.BioID)
}
