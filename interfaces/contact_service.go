package interfaces

import (
	"context"

	"github.com/devfolio/folio-api/internal/models"
)

// ContactSubmission is a raw contact form payload plus request metadata.
type ContactSubmission struct {
	Name          string
	Email         string
	Subject       string
	Message       string
	SourceAddress string
	UserAgent     string
}

// Pagination describes the page of a List result.
type Pagination struct {
	CurrentPage int   `json:"current"`
	TotalPages  int   `json:"pages"`
	TotalCount  int64 `json:"total"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// ContactStats aggregates message counts. All counts except Spam cover
// non-spam messages only; Today covers the current calendar day.
type ContactStats struct {
	Total   int64 `json:"total"`
	Unread  int64 `json:"unread"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
	Spam    int64 `json:"spam"`
	Today   int64 `json:"today"`
}

type ContactService interface {
	// Submit runs the ingestion pipeline: rate limit, sanitize, validate,
	// classify spam, persist. Returns the created message id.
	Submit(ctx context.Context, submission ContactSubmission) (string, error)
	List(ctx context.Context, filter ContactMessageFilter, page, limit int) ([]*models.ContactMessage, Pagination, error)
	Update(ctx context.Context, id string, status *string, isSpam *bool) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*ContactStats, error)
}
