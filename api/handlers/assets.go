package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/devfolio/folio-api/interfaces"
	er "github.com/devfolio/folio-api/internal/errors"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/models"
	"github.com/devfolio/folio-api/internal/tracing"
)

// AssetsHandler serves the CMS-like asset documents driving the front end.
type AssetsHandler struct {
	assetService interfaces.AssetService
	log          logger.Logger
}

func NewAssetsHandler(assetService interfaces.AssetService, log logger.Logger) *AssetsHandler {
	return &AssetsHandler{
		assetService: assetService,
		log:          log,
	}
}

// UpsertAssetRequest is the expected JSON body for POST /api/assets
type UpsertAssetRequest struct {
	AssetType string         `json:"assetType"`
	Data      models.JSONDoc `json:"data"`
}

// GetByType handles GET /api/assets/:assetType
func (h *AssetsHandler) GetByType() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "AssetsHandler.GetByType", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		assetType := c.Param("assetType")
		data, err := h.assetService.GetByType(ctx, assetType)
		if err != nil {
			if errors.Is(err, er.ErrAssetNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"success": false,
					"message": fmt.Sprintf("Asset type '%s' not found", assetType),
				})
				return
			}
			tracing.TraceErr(span, err)
			h.log.Errorf("Error fetching asset: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}

// GetAll handles GET /api/assets
func (h *AssetsHandler) GetAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "AssetsHandler.GetAll", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		assetsMap, err := h.assetService.GetAll(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			h.log.Errorf("Error fetching all assets: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    assetsMap,
		})
	}
}

// Upsert handles POST /api/assets
func (h *AssetsHandler) Upsert() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "AssetsHandler.Upsert", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request UpsertAssetRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
			return
		}
		if request.AssetType == "" || len(request.Data) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "assetType and data are required"})
			return
		}
		tracing.LogObjectAsJson(span, "request", request)

		asset, created, err := h.assetService.Upsert(ctx, request.AssetType, request.Data)
		if err != nil {
			tracing.TraceErr(span, err)
			h.log.Errorf("Error upserting asset: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, asset)
	}
}
