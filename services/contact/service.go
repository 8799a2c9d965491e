package contact

import (
	"context"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"

	"github.com/devfolio/folio-api/interfaces"
	"github.com/devfolio/folio-api/internal/enum"
	er "github.com/devfolio/folio-api/internal/errors"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/models"
	"github.com/devfolio/folio-api/internal/tracing"
	"github.com/devfolio/folio-api/internal/utils"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	messageIDPrefix = "cmsg_"

	defaultStoreTimeout = 5 * time.Second
)

// AddressLimiter is the admission control for contact submissions, keyed by
// source address. The limiter is injected at construction so the service
// owns no global state.
type AddressLimiter interface {
	Allow(key string) bool
}

type contactService struct {
	log          logger.Logger
	repo         interfaces.ContactMessageRepository
	limiter      AddressLimiter
	now          func() time.Time
	storeTimeout time.Duration
}

// Option configures a contact service.
type Option func(*contactService)

// WithStoreTimeout overrides the per-operation database deadline.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *contactService) {
		s.storeTimeout = d
	}
}

func NewContactService(log logger.Logger, repo interfaces.ContactMessageRepository, limiter AddressLimiter, opts ...Option) interfaces.ContactService {
	s := &contactService{
		log:          log,
		repo:         repo,
		limiter:      limiter,
		now:          time.Now,
		storeTimeout: defaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// storeCtx bounds database work so a stalled connection fails the operation
// with ErrConnectionTimeout instead of hanging the request.
func (s *contactService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// Submit runs the ingestion pipeline. Rate limiting is evaluated before any
// other processing so a limited address causes no side effects at all.
func (s *contactService) Submit(ctx context.Context, submission interfaces.ContactSubmission) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactService.Submit")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagSourceAddress(span, submission.SourceAddress)

	if !s.limiter.Allow(submission.SourceAddress) {
		tracing.TraceErr(span, er.ErrRateLimited)
		return "", er.ErrRateLimited
	}

	data := sanitizeSubmission(submission)
	if errs := data.validate(); errs != nil {
		tracing.TraceErr(span, errs)
		return "", errs
	}

	isSpam, spamReason := classifySpam(data.name, data.subject, data.message)

	message := &models.ContactMessage{
		Name:          data.name,
		Email:         data.email,
		Subject:       data.subject,
		Message:       data.message,
		Timestamp:     s.now(),
		SourceAddress: submission.SourceAddress,
		UserAgent:     submission.UserAgent,
		Status:        enum.MessageStatusUnread,
		IsSpam:        isSpam,
		SpamReason:    spamReason,
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := er.FromStore(s.repo.Create(storeCtx, message)); err != nil {
		tracing.TraceErr(span, err)
		return "", err
	}

	if isSpam {
		s.log.Infof("New contact form submission from %s (flagged as spam: %s)", data.email, spamReason)
	} else {
		s.log.Infof("New contact form submission from %s", data.email)
	}

	return message.ID, nil
}

// List returns one page of messages sorted by submission time descending,
// plus pagination metadata. Out-of-range pages yield an empty page.
func (s *contactService) List(ctx context.Context, filter interfaces.ContactMessageFilter, page, limit int) ([]*models.ContactMessage, interfaces.Pagination, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactService.List")
	defer span.Finish()
	tracing.TagComponentService(span)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	offset := (page - 1) * limit
	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()
	messages, total, err := s.repo.List(storeCtx, filter, limit, offset)
	if err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, interfaces.Pagination{}, err
	}
	if messages == nil {
		messages = []*models.ContactMessage{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	pagination := interfaces.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}

	return messages, pagination, nil
}

// Update applies the requested mutations to a message. An unrecognized
// status value is ignored rather than rejected, matching the submit form's
// admin UI contract; the spam flag is applied whenever present.
func (s *contactService) Update(ctx context.Context, id string, status *string, isSpam *bool) (*models.ContactMessage, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactService.Update")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	if !validMessageID(id) {
		return nil, er.ErrInvalidMessageID
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	var updated *models.ContactMessage

	if status != nil {
		if decoded, ok := enum.DecodeMessageStatus(*status); ok {
			message, err := s.repo.UpdateStatus(storeCtx, id, decoded)
			if err != nil {
				err = er.FromStore(err)
				tracing.TraceErr(span, err)
				return nil, err
			}
			updated = message
		}
	}

	if isSpam != nil {
		message, err := s.repo.UpdateSpam(storeCtx, id, *isSpam)
		if err != nil {
			err = er.FromStore(err)
			tracing.TraceErr(span, err)
			return nil, err
		}
		updated = message
	}

	if updated == nil {
		// Nothing applied; return the record unchanged.
		message, err := s.repo.GetByID(storeCtx, id)
		if err != nil {
			err = er.FromStore(err)
			tracing.TraceErr(span, err)
			return nil, err
		}
		if message == nil {
			return nil, er.ErrMessageNotFound
		}
		updated = message
	}

	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactService.Delete")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	if !validMessageID(id) {
		return er.ErrInvalidMessageID
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := er.FromStore(s.repo.Delete(storeCtx, id)); err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

// Stats returns the aggregate message counts. The counts are independent
// queries, mutually consistent barring a race with a concurrent write.
func (s *contactService) Stats(ctx context.Context) (*interfaces.ContactStats, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "contactService.Stats")
	defer span.Finish()
	tracing.TagComponentService(span)

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	stats := &interfaces.ContactStats{}

	var err error
	if stats.Total, err = s.repo.CountAll(storeCtx, false); err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, err
	}
	if stats.Unread, err = s.repo.CountByStatus(storeCtx, enum.MessageStatusUnread, false); err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, err
	}
	if stats.Read, err = s.repo.CountByStatus(storeCtx, enum.MessageStatusRead, false); err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, err
	}
	if stats.Replied, err = s.repo.CountByStatus(storeCtx, enum.MessageStatusReplied, false); err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, err
	}
	if stats.Spam, err = s.repo.CountSpam(storeCtx); err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, err
	}
	if stats.Today, err = s.repo.CountSince(storeCtx, utils.StartOfDay(s.now())); err != nil {
		err = er.FromStore(err)
		tracing.TraceErr(span, err)
		return nil, err
	}

	return stats, nil
}

// validMessageID checks the id shape assigned by the store: the message
// prefix followed by a nanoid.
func validMessageID(id string) bool {
	if !strings.HasPrefix(id, messageIDPrefix) {
		return false
	}
	rest := id[len(messageIDPrefix):]
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
