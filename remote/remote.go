// Package remote defines the contract with the remote request store and its
// HTTP implementation. The store owns transport, wire format, and retry
// policy; the repository only sees confirmed canonical records or a
// SYNC_FAILURE.
package remote

import (
	"context"

	"staffdesk/models"
)

// Store is what the request repository requires from the remote request
// store. Every mutation returns the server-confirmed record, which
// supersedes anything staged locally.
type Store interface {
	FetchAll(ctx context.Context) ([]models.Request, error)
	Create(ctx context.Context, req models.Request) (*models.Request, error)
	PatchStatus(ctx context.Context, id string, status models.Status) (*models.Request, error)
}
