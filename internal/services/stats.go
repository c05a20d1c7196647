package services

import (
	"context"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"github.com/harentsoaR/fair-marriage-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// ContactRequestPrice is what one contact request earns, in taka.
const ContactRequestPrice = 500

const (
	bioTypeMale   = "male"
	bioTypeFemale = "female"
)

type StatsSource interface {
	EstimatedBiodataCount(ctx context.Context) (int64, error)
	CountBiodatasByType(ctx context.Context, bioType string) (int64, error)
	EstimatedReviewCount(ctx context.Context) (int64, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
	EstimatedContactRequestCount(ctx context.Context) (int64, error)
}

var _ StatsSource = (store.Store)(nil)

// StatsService computes the dashboard reports. Every count is an
// independent query, so a report is not a point-in-time snapshot.
type StatsService struct {
	src StatsSource
}

func NewStatsService(src StatsSource) *StatsService {
	return &StatsService{src: src}
}

type count struct {
	dst *int64
	fn  func(ctx context.Context) (int64, error)
}

// run executes the counts concurrently; the first failure cancels the rest.
func run(ctx context.Context, counts ...count) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		c := c
		g.Go(func() error {
			n, err := c.fn(ctx)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	return g.Wait()
}

func (s *StatsService) byType(bioType string) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) { return s.src.CountBiodatasByType(ctx, bioType) }
}

func (s *StatsService) Counts(ctx context.Context) (models.BiodataCounts, error) {
	var out models.BiodataCounts
	err := run(ctx,
		count{&out.TotalBio, s.src.EstimatedBiodataCount},
		count{&out.MaleBio, s.byType(bioTypeMale)},
		count{&out.FemaleBio, s.byType(bioTypeFemale)},
		count{&out.TotalMarriage, s.src.EstimatedReviewCount},
	)
	if err != nil {
		return models.BiodataCounts{}, err
	}
	return out, nil
}

func (s *StatsService) Revenues(ctx context.Context) (models.Revenues, error) {
	var (
		out      models.Revenues
		requests int64
	)
	err := run(ctx,
		count{&out.TotalBio, s.src.EstimatedBiodataCount},
		count{&out.MaleBio, s.byType(bioTypeMale)},
		count{&out.FemaleBio, s.byType(bioTypeFemale)},
		count{&out.TotalPremium, func(ctx context.Context) (int64, error) {
			return s.src.CountUsersByRole(ctx, models.RolePremium)
		}},
		count{&requests, s.src.EstimatedContactRequestCount},
	)
	if err != nil {
		return models.Revenues{}, err
	}
	out.Revenue = requests * ContactRequestPrice
	return out, nil
}
