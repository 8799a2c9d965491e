package asset

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"

	"github.com/devfolio/folio-api/interfaces"
	er "github.com/devfolio/folio-api/internal/errors"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/models"
	"github.com/devfolio/folio-api/internal/tracing"
)

const defaultStoreTimeout = 5 * time.Second

type assetService struct {
	log          logger.Logger
	repo         interfaces.AssetRepository
	storeTimeout time.Duration
}

// Option configures an asset service.
type Option func(*assetService)

// WithStoreTimeout overrides the per-operation database deadline.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *assetService) {
		s.storeTimeout = d
	}
}

func NewAssetService(log logger.Logger, repo interfaces.AssetRepository, opts ...Option) interfaces.AssetService {
	s := &assetService{
		log:          log,
		repo:         repo,
		storeTimeout: defaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// storeCtx bounds database work so a stalled connection fails the operation
// with ErrConnectionTimeout instead of hanging the request.
func (s *assetService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

func (s *assetService) GetByType(ctx context.Context, assetType string) (models.JSONDoc, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "assetService.GetByType")
	defer span.Finish()
	tracing.TagComponentService(span)

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()
	asset, err := s.repo.GetByType(storeCtx, assetType)
	if err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, err
	}
	if asset == nil {
		return nil, er.ErrAssetNotFound
	}
	return asset.Data, nil
}

// GetAll returns every asset document keyed by its type name.
func (s *assetService) GetAll(ctx context.Context) (map[string]models.JSONDoc, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "assetService.GetAll")
	defer span.Finish()
	tracing.TagComponentService(span)

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()
	assets, err := s.repo.GetAll(storeCtx)
	if err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, err
	}

	assetsMap := make(map[string]models.JSONDoc, len(assets))
	for _, asset := range assets {
		assetsMap[asset.AssetType] = asset.Data
	}
	return assetsMap, nil
}

func (s *assetService) Upsert(ctx context.Context, assetType string, data models.JSONDoc) (*models.Asset, bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "assetService.Upsert")
	defer span.Finish()
	tracing.TagComponentService(span)

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()
	asset, created, err := s.repo.Upsert(storeCtx, assetType, data)
	if err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, false, err
	}
	if created {
		s.log.Infof("Created asset document %q", assetType)
	}
	return asset, created, nil
}
