package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/pkg/blob"
)

// Service keeps the lead list as a single JSON array behind a blob store,
// newest entry first. A mutex serializes the read-modify-write cycle so
// concurrent form submissions cannot drop each other's entries.
type Service struct {
	mu    sync.Mutex
	store blob.Store
}

func NewService(store blob.Store) *Service {
	return &Service{store: store}
}

// List returns all recorded leads, newest first. A store that has never been
// written reads as an empty list.
func (s *Service) List(ctx context.Context) ([]models.LeadEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Append records a new lead at the head of the list, stamping id and
// creation time. The stamped entry is returned.
func (s *Service) Append(ctx context.Context, entry models.LeadEntry) (models.LeadEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return models.LeadEntry{}, err
	}

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	list = append([]models.LeadEntry{entry}, list...)
	if err := s.save(ctx, list); err != nil {
		return models.LeadEntry{}, err
	}
	return entry, nil
}

// Remove deletes the lead with the given id. Removing an unknown id is a
// no-op so repeated deletes from the admin UI stay idempotent.
func (s *Service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, entry := range list {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return s.save(ctx, kept)
}

func (s *Service) load(ctx context.Context) ([]models.LeadEntry, error) {
	raw, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, blob.ErrNotExist) {
			return []models.LeadEntry{}, nil
		}
		return nil, fmt.Errorf("load leads: %w", err)
	}
	var list []models.LeadEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}
	return list, nil
}

func (s *Service) save(ctx context.Context, list []models.LeadEntry) error {
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leads: %w", err)
	}
	if err := s.store.Save(ctx, raw); err != nil {
		return fmt.Errorf("save leads: %w", err)
	}
	return nil
}
