package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/devfolio/folio-api/internal/utils"
)

// Asset is an arbitrary JSON document keyed by a unique type name, used to
// drive front-end content (about, education, skills, projects, certificates).
type Asset struct {
	ID        string  `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	AssetType string  `gorm:"column:asset_type;type:varchar(100);uniqueIndex;not null" json:"assetType"`
	Data      JSONDoc `gorm:"column:data;type:jsonb;not null" json:"data"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
}

func (Asset) TableName() string {
	return "assets"
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = utils.GenerateNanoIDWithPrefix("asset", 16)
	}
	a.CreatedAt = utils.Now()
	return nil
}
