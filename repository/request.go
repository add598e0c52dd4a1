// Package repository owns the in-process collection of staff requests and
// keeps it synchronized with the remote request store.
package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"staffdesk/models"
	"staffdesk/remote"

	"github.com/google/uuid"
)

// RequestRepository defines the operations on the request collection.
// Mutations are write-through: nothing becomes visible locally until the
// remote store confirms it, and the confirmed record is what gets committed.
type RequestRepository interface {
	Refresh(ctx context.Context) error
	Create(ctx context.Context, userID int, reqType, comment string) (*models.Request, error)
	ListByUser(userID int) []models.Request
	ListAll() []models.Request
	Get(id string) *models.Request
	UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Request, error)
}

// requestRepository implements RequestRepository. The collection preserves
// insertion order, which is also creation order. Each session issues its
// commands sequentially, but the HTTP layer serves different sessions on
// concurrent goroutines and they all share this one collection, so every
// access goes through the lock. Store round trips happen outside it.
type requestRepository struct {
	store remote.Store

	mu       sync.RWMutex
	requests []models.Request
}

// NewRequestRepository creates a repository backed by the given remote store.
func NewRequestRepository(store remote.Store) RequestRepository {
	return &requestRepository{store: store}
}

// Refresh replaces the local collection with the store's full snapshot.
func (r *requestRepository) Refresh(ctx context.Context) error {
	requests, err := r.store.FetchAll(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.requests = requests
	r.mu.Unlock()
	return nil
}

// Create validates and stages a new request, sends it to the store, and
// commits the store's canonical record. A failed round trip leaves the
// collection untouched.
func (r *requestRepository) Create(ctx context.Context, userID int, reqType, comment string) (*models.Request, error) {
	reqType = strings.TrimSpace(reqType)
	comment = strings.TrimSpace(comment)
	if reqType == "" || comment == "" {
		return nil, models.NewValidationError("request type and comment must not be empty")
	}

	staged := models.Request{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      reqType,
		Comment:   comment,
		Status:    models.StatusSubmitted,
		CreatedAt: time.Now().UTC(),
	}

	created, err := r.store.Create(ctx, staged)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.requests = append(r.requests, *created)
	r.mu.Unlock()

	result := *created
	return &result, nil
}

// ListByUser returns the requests belonging to userID in creation order.
func (r *requestRepository) ListByUser(userID int) []models.Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Request
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out
}

// ListAll returns the whole collection in creation order.
func (r *requestRepository) ListAll() []models.Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Request, len(r.requests))
	copy(out, r.requests)
	return out
}

// Get returns a copy of the request with the given id, or nil.
func (r *requestRepository) Get(id string) *models.Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			req := r.requests[i]
			return &req
		}
	}
	return nil
}

// UpdateStatus patches the status through the store and commits the
// confirmed record in place. The repository does not restrict which status
// transitions are allowed; callers decide which statuses they offer.
func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Request, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("unknown request status: " + string(status))
	}

	if r.Get(id) == nil {
		return nil, models.NewNotFoundError("Request", id)
	}

	updated, err := r.store.PatchStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	// Re-find under the write lock; a concurrent Refresh may have moved the
	// entry. A request that vanished entirely stays gone, the confirmed
	// record is still returned to the caller.
	r.mu.Lock()
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i] = *updated
			break
		}
	}
	r.mu.Unlock()

	result := *updated
	return &result, nil
}

// Summarize counts requests by status for the HR dashboard.
func Summarize(requests []models.Request) models.Summary {
	summary := models.Summary{Total: len(requests)}
	for _, req := range requests {
		switch req.Status {
		case models.StatusSubmitted:
			summary.Submitted++
		case models.StatusApproved:
			summary.Approved++
		case models.StatusRejected:
			summary.Rejected++
		}
	}
	return summary
}
