package repository

import (
	"context"
	"errors"
	"time"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/devfolio/folio-api/interfaces"
	"github.com/devfolio/folio-api/internal/enum"
	er "github.com/devfolio/folio-api/internal/errors"
	"github.com/devfolio/folio-api/internal/models"
	"github.com/devfolio/folio-api/internal/tracing"
)

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) interfaces.ContactMessageRepository {
	return &contactMessageRepository{
		db: db,
	}
}

func (r *contactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactMessageRepository.Create")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return result.Error
	}
	tracing.TagEntity(span, message.ID)

	return nil
}

// GetByID retrieves a contact message by its ID
func (r *contactMessageRepository) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactMessageRepository.GetByID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagEntity(span, id)

	var message models.ContactMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &message, nil
}

// List retrieves contact messages matching the filter, sorted by submission
// time descending, with the total count of matching rows.
func (r *contactMessageRepository) List(ctx context.Context, filter interfaces.ContactMessageFilter, limit, offset int) ([]*models.ContactMessage, int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactMessageRepository.List")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var messages []*models.ContactMessage
	var count int64

	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if status, ok := enum.DecodeMessageStatus(filter.Status); ok {
		query = query.Where("status = ?", status)
	}
	if !filter.IncludeSpam {
		query = query.Where("is_spam = ?", false)
	}

	if err := query.Count(&count).Error; err != nil {
		tracing.TraceErr(span, err)
		return nil, 0, err
	}

	if err := query.
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		tracing.TraceErr(span, err)
		return nil, 0, err
	}

	return messages, count, nil
}

// UpdateStatus sets the triage status of a message and returns the updated
// record.
func (r *contactMessageRepository) UpdateStatus(ctx context.Context, id string, status enum.MessageStatus) (*models.ContactMessage, error) {
	return r.update(ctx, "contactMessageRepository.UpdateStatus", id, map[string]interface{}{"status": status})
}

// UpdateSpam sets the spam flag of a message and returns the updated record.
func (r *contactMessageRepository) UpdateSpam(ctx context.Context, id string, isSpam bool) (*models.ContactMessage, error) {
	return r.update(ctx, "contactMessageRepository.UpdateSpam", id, map[string]interface{}{"is_spam": isSpam})
}

func (r *contactMessageRepository) update(ctx context.Context, operationName, id string, fields map[string]interface{}) (*models.ContactMessage, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, operationName)
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagEntity(span, id)

	result := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, er.ErrMessageNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a message permanently. A second delete of the same id
// reports ErrMessageNotFound.
func (r *contactMessageRepository) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactMessageRepository.Delete")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagEntity(span, id)

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ContactMessage{})
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return er.ErrMessageNotFound
	}

	return nil
}

func (r *contactMessageRepository) CountByStatus(ctx context.Context, status enum.MessageStatus, includeSpam bool) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactMessageRepository.CountByStatus")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	query := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("status = ?", status)
	if !includeSpam {
		query = query.Where("is_spam = ?", false)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}
	return count, nil
}

func (r *contactMessageRepository) CountAll(ctx context.Context, includeSpam bool) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactMessageRepository.CountAll")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if !includeSpam {
		query = query.Where("is_spam = ?", false)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}
	return count, nil
}

func (r *contactMessageRepository) CountSpam(ctx context.Context) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactMessageRepository.CountSpam")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("is_spam = ?", true).
		Count(&count).Error; err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}
	return count, nil
}

// CountSince counts non-spam messages submitted at or after the given instant.
func (r *contactMessageRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactMessageRepository.CountSince")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("timestamp >= ? AND is_spam = ?", since, false).
		Count(&count).Error; err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}
	return count, nil
}
