package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/devfolio/folio-api/interfaces"
	"github.com/devfolio/folio-api/internal/models"
	"github.com/devfolio/folio-api/internal/tracing"
)

type assetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) interfaces.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// GetByType retrieves an asset document by its unique type name
func (r *assetRepository) GetByType(ctx context.Context, assetType string) (*models.Asset, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "assetRepository.GetByType")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var asset models.Asset
	if err := r.db.WithContext(ctx).Where("asset_type = ?", assetType).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) GetAll(ctx context.Context) ([]*models.Asset, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "assetRepository.GetAll")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var assets []*models.Asset
	if err := r.db.WithContext(ctx).Find(&assets).Error; err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return assets, nil
}

// Upsert creates or replaces the asset document for the given type. The
// unique index on asset_type makes the read-then-write race safe: a
// concurrent create loses with a constraint error rather than a duplicate.
func (r *assetRepository) Upsert(ctx context.Context, assetType string, data models.JSONDoc) (*models.Asset, bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "assetRepository.Upsert")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	existing, err := r.GetByType(ctx, assetType)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, false, err
	}

	if existing != nil {
		existing.Data = data
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			tracing.TraceErr(span, err)
			return nil, false, err
		}
		return existing, false, nil
	}

	asset := &models.Asset{
		AssetType: assetType,
		Data:      data,
	}
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		tracing.TraceErr(span, err)
		return nil, false, err
	}
	return asset, true, nil
}
