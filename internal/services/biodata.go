package services

import (
	"context"
	"fmt"
	"log"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"github.com/harentsoaR/fair-marriage-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// BiodataService creates profiles with a server-assigned bioId.
type BiodataService struct {
	store     store.BiodataStore
	allocated prometheus.Counter // optional
}

func NewBiodataService(s store.BiodataStore, allocated prometheus.Counter) *BiodataService {
	return &BiodataService{store: s, allocated: allocated}
}

// Create allocates the next bioId and inserts b with it. Any bioId already
// on b is overwritten.
func (s *BiodataService) Create(ctx context.Context, b *models.Biodata) (models.BiodataInsertResult, error) {
	bioID, err := s.store.NextBioID(ctx)
	if err != nil {
		return models.BiodataInsertResult{}, fmt.Errorf("allocate bioId: %w", err)
	}
	if s.allocated != nil {
		s.allocated.Inc()
	}
	log.Printf("CreateBiodata: allocated bioId %d", bioID)

	b.BioID = bioID
	res, err := s.store.InsertBiodata(ctx, b)
	if err != nil {
		return models.BiodataInsertResult{}, err
	}
	return models.BiodataInsertResult{InsertResult: res, BioID: bioID}, nil
}
