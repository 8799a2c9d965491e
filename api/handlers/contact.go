package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	apierrors "github.com/devfolio/folio-api/api/errors"
	"github.com/devfolio/folio-api/interfaces"
	er "github.com/devfolio/folio-api/internal/errors"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/tracing"
)

// ContactHandler exposes the contact message ingestion and admin endpoints.
type ContactHandler struct {
	contactService interfaces.ContactService
	log            logger.Logger
}

func NewContactHandler(contactService interfaces.ContactService, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		log:            log,
	}
}

// SubmitContactRequest is the expected JSON body for POST /api/contact
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateContactRequest is the expected JSON body for PATCH /api/contact/:id.
// Pointers distinguish absent fields from zero values.
type UpdateContactRequest struct {
	Status *string `json:"status"`
	IsSpam *bool   `json:"isSpam"`
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ContactHandler.Submit", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request SubmitContactRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		submission := interfaces.ContactSubmission{
			Name:          request.Name,
			Email:         request.Email,
			Subject:       request.Subject,
			Message:       request.Message,
			SourceAddress: c.ClientIP(),
			UserAgent:     c.GetHeader("User-Agent"),
		}

		id, err := h.contactService.Submit(ctx, submission)
		if err != nil {
			var validationErrs *apierrors.MultiErrors
			switch {
			case errors.Is(err, er.ErrRateLimited):
				c.JSON(http.StatusTooManyRequests, gin.H{
					"error": "Too many contact form submissions, please try again later.",
				})
			case errors.As(err, &validationErrs):
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Validation failed",
					"details": validationErrs.Details(),
				})
			default:
				tracing.TraceErr(span, err)
				h.log.Errorf("Error saving contact message: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error. Please try again later.",
				})
			}
			return
		}

		tracing.TagEntity(span, id)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Your message has been sent successfully. Thank you for reaching out!",
		})
	}
}

// List handles GET /api/contact
func (h *ContactHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ContactHandler.List", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		page := intQuery(c, "page", 1)
		limit := intQuery(c, "limit", 20)
		filter := interfaces.ContactMessageFilter{
			Status:      c.Query("status"),
			IncludeSpam: c.Query("includeSpam") == "true",
		}

		messages, pagination, err := h.contactService.List(ctx, filter, page, limit)
		if err != nil {
			tracing.TraceErr(span, err)
			h.log.Errorf("Error fetching contact messages: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"messages":   messages,
			"pagination": pagination,
		})
	}
}

// Update handles PATCH /api/contact/:id
func (h *ContactHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ContactHandler.Update", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		id := c.Param("id")
		tracing.TagEntity(span, id)

		var request UpdateContactRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		tracing.LogObjectAsJson(span, "request", request)

		message, err := h.contactService.Update(ctx, id, request.Status, request.IsSpam)
		if err != nil {
			h.respondContactError(c, span, err, "Error updating contact message")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Message updated successfully",
			"data":    message,
		})
	}
}

// Delete handles DELETE /api/contact/:id
func (h *ContactHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ContactHandler.Delete", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		id := c.Param("id")
		tracing.TagEntity(span, id)

		if err := h.contactService.Delete(ctx, id); err != nil {
			h.respondContactError(c, span, err, "Error deleting contact message")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Message deleted successfully",
		})
	}
}

// Stats handles GET /api/contact/stats
func (h *ContactHandler) Stats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ContactHandler.Stats", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		stats, err := h.contactService.Stats(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			h.log.Errorf("Error fetching contact stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

func (h *ContactHandler) respondContactError(c *gin.Context, span opentracing.Span, err error, logPrefix string) {
	switch {
	case errors.Is(err, er.ErrInvalidMessageID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
	case errors.Is(err, er.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
	default:
		tracing.TraceErr(span, err)
		h.log.Errorf("%s: %v", logPrefix, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
