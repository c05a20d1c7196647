// Package store is the data access layer of the API. Handlers and services
// only see the Store interface; MongoStore backs production and MemoryStore
// backs tests and local runs without a database.
package store

import (
	"context"
	"errors"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
)

// Collection names, kept identical to the ones the web client's database already uses.
const (
	ColBiodatas        = "Biodata"
	ColReviews         = "Reviews"
	ColUsers           = "Users"
	ColContactRequests = "ContactRequests"
	ColFavourites      = "favourites"
	ColPremiumRequests = "premiumRequests"
	ColCounters        = "counters"
)

var (
	ErrDuplicate = errors.New("store: duplicate key")
	ErrClosed    = errors.New("store: closed")
)

// Single-document reads return (nil, nil) when nothing matches.

type BiodataStore interface {
	ListBiodatas(ctx context.Context) ([]models.Biodata, error)
	// ListBiodatasByEmails returns profiles owned by any of emails, youngest first.
	ListBiodatasByEmails(ctx context.Context, emails []string, limit int64) ([]models.Biodata, error)
	// ListBiodatasByType matches bioType exactly, youngest first.
	ListBiodatasByType(ctx context.Context, bioType string, limit int64) ([]models.Biodata, error)
	GetBiodata(ctx context.Context, bioID int) (*models.Biodata, error)
	GetBiodataByEmail(ctx context.Context, email string) (*models.Biodata, error)
	// NextBioID returns max(bioId)+1, or 1 for an empty collection. Each call
	// returns a value no other call has returned.
	NextBioID(ctx context.Context) (int, error)
	InsertBiodata(ctx context.Context, b *models.Biodata) (models.InsertResult, error)
	UpdateBiodata(ctx context.Context, bioID int, fields map[string]any) (models.UpdateResult, error)
	EstimatedBiodataCount(ctx context.Context) (int64, error)
	// CountBiodatasByType matches bioType case-insensitively and in full.
	CountBiodatasByType(ctx context.Context, bioType string) (int64, error)
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateUserIfAbsent inserts u unless a user with the same email exists.
	// When one exists it is returned and nothing is written.
	CreateUserIfAbsent(ctx context.Context, u *models.User) (*models.User, models.InsertResult, error)
	SetUserRole(ctx context.Context, email, role string) (models.UpdateResult, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
}

type ReviewStore interface {
	// ListReviewsByMarriageDate sorts on marriage_date parsed as MM-DD-YYYY.
	// Reviews whose date does not parse sort first.
	ListReviewsByMarriageDate(ctx context.Context, limit int64) ([]models.Review, error)
	EstimatedReviewCount(ctx context.Context) (int64, error)
}

type ContactRequestStore interface {
	ListContactRequests(ctx context.Context) ([]models.ContactRequest, error)
	ListContactRequestsByEmail(ctx context.Context, email string) ([]models.ContactRequest, error)
	InsertContactRequest(ctx context.Context, r *models.ContactRequest) (models.InsertResult, error)
	ApproveContactRequest(ctx context.Context, email string) (models.UpdateResult, error)
	// DeleteContactRequest removes one request for biodataID; a non-empty
	// email narrows the match to that requester.
	DeleteContactRequest(ctx context.Context, biodataID, email string) (models.DeleteResult, error)
	EstimatedContactRequestCount(ctx context.Context) (int64, error)
}

type FavouriteStore interface {
	ListFavouritesByEmail(ctx context.Context, email string) ([]models.Favourite, error)
	InsertFavourite(ctx context.Context, f *models.Favourite) (models.InsertResult, error)
	DeleteFavourite(ctx context.Context, biodataID int, email string) (models.DeleteResult, error)
}

type PremiumRequestStore interface {
	ListPremiumRequests(ctx context.Context) ([]models.PremiumRequest, error)
	InsertPremiumRequest(ctx context.Context, r *models.PremiumRequest) (models.InsertResult, error)
	ApprovePremiumRequest(ctx context.Context, email string) (models.UpdateResult, error)
}

type Store interface {
	BiodataStore
	UserStore
	ReviewStore
	ContactRequestStore
	FavouriteStore
	PremiumRequestStore

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
