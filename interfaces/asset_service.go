package interfaces

import (
	"context"

	"github.com/devfolio/folio-api/internal/models"
)

type AssetService interface {
	GetByType(ctx context.Context, assetType string) (models.JSONDoc, error)
	GetAll(ctx context.Context) (map[string]models.JSONDoc, error)
	Upsert(ctx context.Context, assetType string, data models.JSONDoc) (*models.Asset, bool, error)
}
