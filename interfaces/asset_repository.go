package interfaces

import (
	"context"

	"github.com/devfolio/folio-api/internal/models"
)

type AssetRepository interface {
	GetByType(ctx context.Context, assetType string) (*models.Asset, error)
	GetAll(ctx context.Context) ([]*models.Asset, error)
	// Upsert creates the asset if no document with the same type exists,
	// otherwise replaces its data. Returns true when a new row was created.
	Upsert(ctx context.Context, assetType string, data models.JSONDoc) (*models.Asset, bool, error)
}
