package seed

import (
	"context"
	"encoding/json"

	"github.com/devfolio/folio-api/interfaces"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/models"
)

// defaultAssets are the documents the front end expects on a fresh install.
// Each entry is created only if no document with the same type exists, so
// re-running seed never clobbers edited content.
var defaultAssets = map[string]interface{}{
	"navElements": []string{"About", "Education", "Skills", "Projects", "Contact"},
	"logoConfig": map[string]interface{}{
		"textLogo":      "Portfolio",
		"imgLogo":       nil,
		"showImageLogo": false,
	},
	"footerIcons": []map[string]interface{}{
		{"name": "LinkedIn", "component": "FaLinkedin", "link": "https://www.linkedin.com/"},
		{"name": "GitHub", "component": "FaGithub", "link": "https://github.com/"},
	},
	"aboutPage": map[string]interface{}{
		"authorName":          "Your Name",
		"authorDescription":   "Short bio goes here.",
		"authorProfile":       "https://via.placeholder.com/400x400",
		"profileImgTagLine":   "Software Engineer",
		"getInTouchUrl":       "mailto:you@example.com",
		"authorContactMail":   "you@example.com",
		"authorContactNumber": "",
	},
	"educationPage":    []map[string]interface{}{},
	"skillsPage":       []map[string]interface{}{},
	"projectsPage":     []map[string]interface{}{},
	"certificatesPage": []map[string]interface{}{},
}

// Run inserts the default asset documents that are missing.
func Run(ctx context.Context, log logger.Logger, repo interfaces.AssetRepository) error {
	for assetType, data := range defaultAssets {
		existing, err := repo.GetByType(ctx, assetType)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Infof("Asset %q already present, skipping", assetType)
			continue
		}

		doc, err := json.Marshal(data)
		if err != nil {
			return err
		}
		if _, _, err := repo.Upsert(ctx, assetType, models.JSONDoc(doc)); err != nil {
			return err
		}
		log.Infof("Seeded asset %q", assetType)
	}
	return nil
}
