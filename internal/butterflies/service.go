package butterflies

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/butterflyhouse/butterfly-api/internal/models"
	"github.com/butterflyhouse/butterfly-api/internal/store"
	"github.com/butterflyhouse/butterfly-api/pkg/metrics"
)

var ErrNotFound = errors.New("butterfly not found")

// Service exposes the butterfly record operations over the shared document.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Get returns the butterfly with the given id, scanning the collection in
// order. The collection carries no sortedness guarantee.
func (s *Service) Get(id string) (models.Butterfly, error) {
	var (
		out   models.Butterfly
		found bool
	)
	s.store.View(func(doc *store.Document) {
		for _, b := range doc.Butterflies {
			if b.ID == id {
				out = b
				found = true
				return
			}
		}
	})
	if !found {
		return models.Butterfly{}, ErrNotFound
	}
	return out, nil
}

// Create assigns a fresh id (any client-supplied id is discarded), appends the
// record and persists the document before returning.
func (s *Service) Create(ctx context.Context, b models.Butterfly) (models.Butterfly, error) {
	b.ID = uuid.NewString()
	err := s.store.Update(ctx, func(doc *store.Document) error {
		doc.Butterflies = append(doc.Butterflies, b)
		return nil
	})
	if err != nil {
		return models.Butterfly{}, err
	}
	metrics.RecordsCreated.WithLabelValues("butterflies").Inc()
	return b, nil
}
