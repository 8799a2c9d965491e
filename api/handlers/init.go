package handlers

import (
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/services"
)

type Handlers struct {
	Contact *ContactHandler
	Assets  *AssetsHandler
}

func InitHandlers(s *services.Services, log logger.Logger) *Handlers {
	return &Handlers{
		Contact: NewContactHandler(s.ContactService, log),
		Assets:  NewAssetsHandler(s.AssetService, log),
	}
}
