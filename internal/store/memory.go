package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"github.com/harentsoaR/fair-marriage-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store with the same query semantics as
// MongoStore. All operations take one lock, so allocation and user
// creation are trivially atomic.
type MemoryStore struct {
	mu sync.RWMutex

	biodatas        []models.Biodata
	users           []models.User
	reviews         []models.Review
	contactRequests []models.ContactRequest
	favourites      []models.Favourite
	premiumRequests []models.PremiumRequest
	bioIDSeq        int
	closed          bool
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return ctx.Err()
}

func (s *MemoryStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// SeedReviews adds reviews directly; the API has no review write endpoint.
func (s *MemoryStore) SeedReviews(reviews ...models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range reviews {
		if r.ID.IsZero() {
			r.ID = primitive.NewObjectID()
		}
		s.reviews = append(s.reviews, r)
	}
}

func limitSlice[T any](items []T, limit int64) []T {
	if limit > 0 && int64(len(items)) > limit {
		return items[:limit]
	}
	return items
}

func filterCopy[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func sortByAge(items []models.Biodata) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Age < items[j].Age })
}

func inserted(id primitive.ObjectID) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: id}
}

// --- biodatas ---

func (s *MemoryStore) ListBiodatas(ctx context.Context) ([]models.Biodata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterCopy(s.biodatas, func(models.Biodata) bool { return true }), nil
}

func (s *MemoryStore) ListBiodatasByEmails(ctx context.Context, emails []string, limit int64) ([]models.Biodata, error) {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[e] = struct{}{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := filterCopy(s.biodatas, func(b models.Biodata) bool {
		_, ok := set[b.Email]
		return ok
	})
	sortByAge(out)
	return limitSlice(out, limit), nil
}

func (s *MemoryStore) ListBiodatasByType(ctx context.Context, bioType string, limit int64) ([]models.Biodata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := filterCopy(s.biodatas, func(b models.Biodata) bool { return b.BioType == bioType })
	sortByAge(out)
	return limitSlice(out, limit), nil
}

func (s *MemoryStore) GetBiodata(ctx context.Context, bioID int) (*models.Biodata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.biodatas {
		if b.BioID == bioID {
			return &b, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetBiodataByEmail(ctx context.Context, email string) (*models.Biodata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.biodatas {
		if b.Email == email {
			return &b, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) NextBioID(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	highest := 0
	for _, b := range s.biodatas {
		highest = max(highest, b.BioID)
	}
	s.bioIDSeq = max(s.bioIDSeq, highest) + 1
	return s.bioIDSeq, nil
}

func (s *MemoryStore) InsertBiodata(ctx context.Context, b *models.Biodata) (models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.biodatas {
		if existing.BioID == b.BioID {
			return models.InsertResult{}, fmt.Errorf("insert into %s: %w", ColBiodatas, ErrDuplicate)
		}
	}
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	s.biodatas = append(s.biodatas, *b)
	return inserted(b.ID), nil
}

func (s *MemoryStore) UpdateBiodata(ctx context.Context, bioID int, fields map[string]any) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.biodatas {
		if s.biodatas[i].BioID != bioID {
			continue
		}
		before := s.biodatas[i]
		if err := applyBiodataFields(&s.biodatas[i], fields); err != nil {
			s.biodatas[i] = before
			return models.UpdateResult{}, err
		}
		modified := int64(0)
		if s.biodatas[i] != before {
			modified = 1
		}
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

func applyBiodataFields(b *models.Biodata, fields map[string]any) error {
	strs := map[string]*string{
		"bioType":               &b.BioType,
		"name":                  &b.Name,
		"image":                 &b.Image,
		"dateOfBirth":           &b.DateOfBirth,
		"height":                &b.Height,
		"weight":                &b.Weight,
		"occupation":            &b.Occupation,
		"race":                  &b.Race,
		"fathersName":           &b.FathersName,
		"mothersName":           &b.MothersName,
		"permanentDivision":     &b.PermanentDivision,
		"presentDivision":       &b.PresentDivision,
		"expectedPartnerHeight": &b.ExpectedPartnerHeight,
		"expectedPartnerWeight": &b.ExpectedPartnerWeight,
		"email":                 &b.Email,
		"mobile":                &b.Mobile,
	}
	ints := map[string]*int{
		"age":                &b.Age,
		"expectedPartnerAge": &b.ExpectedPartnerAge,
	}
	for key, v := range fields {
		if dst, ok := strs[key]; ok {
			sv, ok := v.(string)
			if !ok {
				return fmt.Errorf("store: field %s: want string, got %T", key, v)
			}
			*dst = sv
			continue
		}
		if dst, ok := ints[key]; ok {
			iv, ok := v.(int)
			if !ok {
				return fmt.Errorf("store: field %s: want int, got %T", key, v)
			}
			*dst = iv
			continue
		}
		return fmt.Errorf("store: unknown biodata field %q", key)
	}
	return nil
}

func (s *MemoryStore) EstimatedBiodataCount(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.biodatas)), nil
}

func (s *MemoryStore) CountBiodatasByType(ctx context.Context, bioType string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, b := range s.biodatas {
		if strings.EqualFold(b.BioType, bioType) {
			n++
		}
	}
	return n, nil
}

// --- users ---

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterCopy(s.users, func(models.User) bool { return true }), nil
}

func (s *MemoryStore) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterCopy(s.users, func(u models.User) bool { return u.Role == role }), nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByEmail(email), nil
}

func (s *MemoryStore) userByEmail(email string) *models.User {
	for _, u := range s.users {
		if u.Email == email {
			return &u
		}
	}
	return nil
}

func (s *MemoryStore) CreateUserIfAbsent(ctx context.Context, u *models.User) (*models.User, models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing := s.userByEmail(u.Email); existing != nil {
		return existing, models.InsertResult{}, nil
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, *u)
	return nil, inserted(u.ID), nil
}

func (s *MemoryStore) SetUserRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			return setOnce(&s.users[i].Role, role), nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

// setOnce applies one $set to a matched document.
func setOnce(dst *string, v string) models.UpdateResult {
	res := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if *dst != v {
		*dst = v
		res.ModifiedCount = 1
	}
	return res
}

func (s *MemoryStore) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// --- reviews ---

func (s *MemoryStore) ListReviewsByMarriageDate(ctx context.Context, limit int64) ([]models.Review, error) {
	s.mu.RLock()
	out := filterCopy(s.reviews, func(models.Review) bool { return true })
	s.mu.RUnlock()

	for i := range out {
		out[i].ParsedDate = nil
		if t, ok := utils.ParseMarriageDate(out[i].MarriageDate); ok {
			out[i].ParsedDate = &t
		}
	}
	// Unparsed dates are null and sort before every date.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ParsedDate, out[j].ParsedDate
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		}
		return a.Before(*b)
	})
	return limitSlice(out, limit), nil
}

func (s *MemoryStore) EstimatedReviewCount(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.reviews)), nil
}

// --- contact requests ---

func (s *MemoryStore) ListContactRequests(ctx context.Context) ([]models.ContactRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterCopy(s.contactRequests, func(models.ContactRequest) bool { return true }), nil
}

func (s *MemoryStore) ListContactRequestsByEmail(ctx context.Context, email string) ([]models.ContactRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterCopy(s.contactRequests, func(r models.ContactRequest) bool { return r.Email == email }), nil
}

func (s *MemoryStore) InsertContactRequest(ctx context.Context, r *models.ContactRequest) (models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	s.contactRequests = append(s.contactRequests, *r)
	return inserted(r.ID), nil
}

func (s *MemoryStore) ApproveContactRequest(ctx context.Context, email string) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contactRequests {
		if s.contactRequests[i].Email == email {
			return setOnce(&s.contactRequests[i].Status, models.StatusApproved), nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

func (s *MemoryStore) DeleteContactRequest(ctx context.Context, biodataID, email string) (models.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.contactRequests {
		if r.BiodataID == biodataID && (email == "" || r.Email == email) {
			s.contactRequests = append(s.contactRequests[:i], s.contactRequests[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

func (s *MemoryStore) EstimatedContactRequestCount(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.contactRequests)), nil
}

// --- favourites ---

func (s *MemoryStore) ListFavouritesByEmail(ctx context.Context, email string) ([]models.Favourite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterCopy(s.favourites, func(f models.Favourite) bool { return f.Email == email }), nil
}

func (s *MemoryStore) InsertFavourite(ctx context.Context, f *models.Favourite) (models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	s.favourites = append(s.favourites, *f)
	return inserted(f.ID), nil
}

func (s *MemoryStore) DeleteFavourite(ctx context.Context, biodataID int, email string) (models.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.favourites {
		if f.BiodataID == biodataID && (email == "" || f.Email == email) {
			s.favourites = append(s.favourites[:i], s.favourites[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

// --- premium requests ---

func (s *MemoryStore) ListPremiumRequests(ctx context.Context) ([]models.PremiumRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterCopy(s.premiumRequests, func(models.PremiumRequest) bool { return true }), nil
}

func (s *MemoryStore) InsertPremiumRequest(ctx context.Context, r *models.PremiumRequest) (models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	s.premiumRequests = append(s.premiumRequests, *r)
	return inserted(r.ID), nil
}

func (s *MemoryStore) ApprovePremiumRequest(ctx context.Context, email string) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.premiumRequests {
		if s.premiumRequests[i].Email == email {
			return setOnce(&s.premiumRequests[i].Status, models.StatusApproved), nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}
