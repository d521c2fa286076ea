package users

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/butterflyhouse/butterfly-api/internal/models"
	"github.com/butterflyhouse/butterfly-api/internal/store"
	"github.com/butterflyhouse/butterfly-api/pkg/metrics"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrNoRatings     = errors.New("no ratings found")
	ErrInvalidRating = errors.New("rating out of range")
)

// Service exposes the user record operations, including the nested rating
// upsert, over the shared document.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Get returns the user with the given id. The rating list is copied so the
// caller never aliases the stored document.
func (s *Service) Get(id string) (models.User, error) {
	var (
		out   models.User
		found bool
	)
	s.store.View(func(doc *store.Document) {
		if u := findUser(doc, id); u != nil {
			out = *u
			out.ButterflyRatings = cloneRatings(u.ButterflyRatings)
			found = true
		}
	})
	if !found {
		return models.User{}, ErrNotFound
	}
	return out, nil
}

// Create assigns a fresh id (any client-supplied id is discarded), appends the
// record and persists the document before returning.
func (s *Service) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	u.ButterflyRatings = nil // the list stays absent until the first rating
	err := s.store.Update(ctx, func(doc *store.Document) error {
		doc.Users = append(doc.Users, u)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	metrics.RecordsCreated.WithLabelValues("users").Inc()
	return u, nil
}

// UpsertRating records one user's rating for a butterfly name. An existing
// entry for the same name is overwritten in place; otherwise a new entry is
// appended. The user lookup happens before the range check so an unknown user
// reports ErrNotFound regardless of the value. Nothing is persisted on
// failure.
func (s *Service) UpsertRating(ctx context.Context, userID, butterfly string, value float64) (models.Rating, error) {
	var inserted bool
	err := s.store.Update(ctx, func(doc *store.Document) error {
		u := findUser(doc, userID)
		if u == nil {
			return ErrNotFound
		}
		if value < 0 || value > 5 {
			return ErrInvalidRating
		}
		u.ButterflyRatings, inserted = upsert(u.ButterflyRatings, butterfly, value)
		return nil
	})
	if err != nil {
		return models.Rating{}, err
	}
	outcome := "updated"
	if inserted {
		outcome = "inserted"
	}
	metrics.RatingsUpserted.WithLabelValues(outcome).Inc()
	return models.Rating{Butterfly: butterfly, Rating: value}, nil
}

// Ratings returns the user's stored rating list. A user who never rated
// anything has no list at all and reports ErrNoRatings, as does an unknown
// user id.
func (s *Service) Ratings(userID string) ([]models.Rating, error) {
	var out []models.Rating
	s.store.View(func(doc *store.Document) {
		if u := findUser(doc, userID); u != nil && u.ButterflyRatings != nil {
			out = cloneRatings(u.ButterflyRatings)
		}
	})
	if out == nil {
		return nil, ErrNoRatings
	}
	return out, nil
}

// upsert returns the list with the rating for name set to value, and whether
// a new entry was appended. Entry positions never change on overwrite.
func upsert(list []models.Rating, name string, value float64) ([]models.Rating, bool) {
	for i := range list {
		if list[i].Butterfly == name {
			list[i].Rating = value
			return list, false
		}
	}
	return append(list, models.Rating{Butterfly: name, Rating: value}), true
}

func findUser(doc *store.Document, id string) *models.User {
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return &doc.Users[i]
		}
	}
	return nil
}

func cloneRatings(list []models.Rating) []models.Rating {
	if list == nil {
		return nil
	}
	out := make([]models.Rating, len(list))
	copy(out, list)
	return out
}
