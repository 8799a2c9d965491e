package services

import (
	"time"

	"github.com/devfolio/folio-api/interfaces"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/ratelimit"
	"github.com/devfolio/folio-api/internal/repository"
	"github.com/devfolio/folio-api/services/asset"
	"github.com/devfolio/folio-api/services/contact"
)

type Services struct {
	ContactService interfaces.ContactService
	AssetService   interfaces.AssetService

	// SubmitLimiter is exposed so the cron digest can prune idle windows.
	SubmitLimiter *ratelimit.Limiter
}

func InitServices(log logger.Logger, repos *repository.Repositories, rateLimitConfig *ratelimit.Config) *Services {
	limiter := ratelimit.NewLimiter(
		time.Duration(rateLimitConfig.WindowMinutes)*time.Minute,
		rateLimitConfig.MaxPerWindow,
	)

	return &Services{
		ContactService: contact.NewContactService(log, repos.ContactMessageRepository, limiter),
		AssetService:   asset.NewAssetService(log, repos.AssetRepository),
		SubmitLimiter:  limiter,
	}
}
