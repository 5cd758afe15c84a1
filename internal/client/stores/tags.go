package stores

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/toast"
	"github.com/ledgerline/ledgerline/internal/logging"
)

// TagAPI is the slice of the API client the tag store needs.
type TagAPI interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, req models.CreateTagRequest) (models.Tag, error)
	UpdateTag(ctx context.Context, id string, req models.UpdateTagRequest) (models.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

// TagStore caches the active tenant's tags.
//
// Create is optimistic: a placeholder tag with a transient id is
// inserted immediately so the new name is usable in forms while the
// request is in flight, then reconciled with the server-issued record.
type TagStore struct {
	col    *collection[models.Tag]
	client TagAPI
	toast  *toast.Notifier
	log    logging.Logger
}

func NewTagStore(client TagAPI, notifier *toast.Notifier, log logging.Logger, tenants *TenantSignal) *TagStore {
	s := &TagStore{
		col:    newCollection(func(t models.Tag) string { return t.ID }),
		client: client,
		toast:  notifier,
		log:    log,
	}
	tenants.Subscribe(func(ctx context.Context, tenantID string) {
		s.col.clear()
		if tenantID != "" {
			s.List(ctx)
		}
	})
	return s
}

// Tags returns a copy of the cached collection, placeholders included.
func (s *TagStore) Tags() []models.Tag { return s.col.Items() }

// Loading reports whether a call is in flight.
func (s *TagStore) Loading() bool { return s.col.Loading() }

// Len returns the number of cached tags.
func (s *TagStore) Len() int { return s.col.Len() }

// GetByID looks up a tag in the cache; no implicit fetch.
func (s *TagStore) GetByID(id string) (models.Tag, bool) { return s.col.GetByID(id) }

// List reloads the collection from the server.
func (s *TagStore) List(ctx context.Context) {
	gen := s.col.beginList()

	tags, err := s.client.ListTags(ctx)
	if err != nil {
		s.col.endList(gen)
		s.log.Error(ctx, "loading tags failed", "err", err)
		s.toast.Error("Failed to load tags")
		return
	}

	s.col.replaceAll(gen, tags)
}

// Create inserts a transient placeholder, then swaps it for the
// server-issued record. On failure the placeholder is rolled back and
// the error propagated.
func (s *TagStore) Create(ctx context.Context, req models.CreateTagRequest) (models.Tag, error) {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	placeholderID := "pending-" + uuid.NewString()
	s.col.add(gen, models.Tag{ID: placeholderID, Name: req.Name})

	tag, err := s.client.CreateTag(ctx, req)
	if err != nil {
		s.col.remove(gen, placeholderID)
		return models.Tag{}, err
	}

	s.col.replace(gen, placeholderID, tag)
	s.toast.Success("Tag created successfully")
	return tag, nil
}

// Update updates a tag and replaces the cached entry by id.
func (s *TagStore) Update(ctx context.Context, id string, req models.UpdateTagRequest) (models.Tag, error) {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	tag, err := s.client.UpdateTag(ctx, id, req)
	if err != nil {
		return models.Tag{}, err
	}

	s.col.replace(gen, id, tag)
	s.toast.Success("Tag updated successfully")
	return tag, nil
}

// Delete deletes a tag and removes the cached entry by id.
func (s *TagStore) Delete(ctx context.Context, id string) error {
	gen := s.col.generation()
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	if err := s.client.DeleteTag(ctx, id); err != nil {
		return err
	}

	s.col.remove(gen, id)
	s.toast.Success("Tag deleted successfully")
	return nil
}
