package repository

import (
	"gorm.io/gorm"

	"github.com/devfolio/folio-api/interfaces"
	"github.com/devfolio/folio-api/internal/models"
)

type Repositories struct {
	ContactMessageRepository interfaces.ContactMessageRepository
	AssetRepository          interfaces.AssetRepository
}

func InitRepositories(folioDB *gorm.DB) *Repositories {
	return &Repositories{
		ContactMessageRepository: NewContactMessageRepository(folioDB),
		AssetRepository:          NewAssetRepository(folioDB),
	}
}

func MigrateDB(folioDB *gorm.DB) error {
	return folioDB.AutoMigrate(
		&models.ContactMessage{},
		&models.Asset{},
	)
}
