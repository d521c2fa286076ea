package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/butterflyhouse/butterfly-api/internal/models"
	"github.com/butterflyhouse/butterfly-api/pkg/logger"
	"github.com/butterflyhouse/butterfly-api/pkg/metrics"
)

// Document is the whole persisted state: exactly two ordered collections.
type Document struct {
	Butterflies []models.Butterfly `json:"butterflies" bson:"butterflies"`
	Users       []models.User      `json:"users" bson:"users"`
}

// Backend persists the document as an opaque whole: one full load at startup,
// one full save after every mutation.
type Backend interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// Uploader receives an encoded snapshot of the document after each save.
type Uploader interface {
	UploadSnapshot(ctx context.Context, data []byte) error
}

// Store holds the single in-memory document. Every mutation runs under one
// mutex covering read-modify-write plus the flush to the backend, so two
// concurrent writers cannot lose each other's updates.
type Store struct {
	mu      sync.Mutex
	doc     *Document
	backend Backend
	backup  Uploader
}

// Open loads the full document from the backend. A backend with no prior
// state yields an empty document.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	doc, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return &Store{doc: doc, backend: backend}, nil
}

// SetBackup enables snapshot uploads after successful saves.
func (s *Store) SetBackup(u Uploader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backup = u
}

// View runs fn with read access to the document. fn must not retain or
// mutate the document.
func (s *Store) View(fn func(doc *Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Update runs fn under the store lock and flushes the document to the backend
// when fn succeeds. When fn returns an error nothing is persisted and the
// error is returned unwrapped so callers can match sentinel errors.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}
	if err := s.backend.Save(ctx, s.doc); err != nil {
		return fmt.Errorf("persist document: %w", err)
	}
	metrics.DocumentSaves.Inc()

	if s.backup != nil {
		data, err := json.Marshal(s.doc)
		if err != nil {
			logger.Warnf("encode snapshot for backup: %v", err)
			return nil
		}
		// upload outside the request path; a failed backup never fails the request
		go func() {
			if err := s.backup.UploadSnapshot(context.Background(), data); err != nil {
				logger.Warnf("snapshot upload failed: %v", err)
			}
		}()
	}
	return nil
}

func emptyDocument() *Document {
	return &Document{
		Butterflies: []models.Butterfly{},
		Users:       []models.User{},
	}
}

// normalize ensures both collections encode as [] rather than null when a
// loaded document omitted one of them.
func (d *Document) normalize() {
	if d.Butterflies == nil {
		d.Butterflies = []models.Butterfly{}
	}
	if d.Users == nil {
		d.Users = []models.User{}
	}
}
