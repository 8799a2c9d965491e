package interfaces

import (
	"context"
	"time"

	"github.com/devfolio/folio-api/internal/enum"
	"github.com/devfolio/folio-api/internal/models"
)

// ContactMessageFilter narrows List queries. Status empty or "all" matches
// every status; spam messages are excluded unless IncludeSpam is set.
type ContactMessageFilter struct {
	Status      string
	IncludeSpam bool
}

type ContactMessageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	List(ctx context.Context, filter ContactMessageFilter, limit, offset int) ([]*models.ContactMessage, int64, error)
	UpdateStatus(ctx context.Context, id string, status enum.MessageStatus) (*models.ContactMessage, error)
	UpdateSpam(ctx context.Context, id string, isSpam bool) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status enum.MessageStatus, includeSpam bool) (int64, error)
	CountAll(ctx context.Context, includeSpam bool) (int64, error)
	CountSpam(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
