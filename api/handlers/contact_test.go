package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/folio-api/api"
	apierrors "github.com/devfolio/folio-api/api/errors"
	"github.com/devfolio/folio-api/interfaces"
	er "github.com/devfolio/folio-api/internal/errors"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/models"
	"github.com/devfolio/folio-api/services"
)

const testAdminKey = "test-admin-key"

func testLogger() logger.Logger {
	l := logger.NewAppLogger(&logger.Config{DevMode: true, LogLevel: "error"})
	l.InitLogger()
	return l
}

// fakeContactService is a scriptable ContactService for handler tests.
type fakeContactService struct {
	submitID  string
	submitErr error

	messages   []*models.ContactMessage
	pagination interfaces.Pagination
	listErr    error

	updated   *models.ContactMessage
	updateErr error

	deleteErr error

	stats    *interfaces.ContactStats
	statsErr error

	lastSubmission interfaces.ContactSubmission
	lastFilter     interfaces.ContactMessageFilter
	lastPage       int
	lastLimit      int
}

func (f *fakeContactService) Submit(_ context.Context, submission interfaces.ContactSubmission) (string, error) {
	f.lastSubmission = submission
	return f.submitID, f.submitErr
}

func (f *fakeContactService) List(_ context.Context, filter interfaces.ContactMessageFilter, page, limit int) ([]*models.ContactMessage, interfaces.Pagination, error) {
	f.lastFilter = filter
	f.lastPage = page
	f.lastLimit = limit
	return f.messages, f.pagination, f.listErr
}

func (f *fakeContactService) Update(_ context.Context, _ string, _ *string, _ *bool) (*models.ContactMessage, error) {
	return f.updated, f.updateErr
}

func (f *fakeContactService) Delete(_ context.Context, _ string) error {
	return f.deleteErr
}

func (f *fakeContactService) Stats(_ context.Context) (*interfaces.ContactStats, error) {
	return f.stats, f.statsErr
}

// fakeAssetService satisfies the Services wiring; asset tests script it.
type fakeAssetService struct {
	doc     models.JSONDoc
	all     map[string]models.JSONDoc
	getErr  error
	asset   *models.Asset
	created bool
	upErr   error
}

func (f *fakeAssetService) GetByType(_ context.Context, _ string) (models.JSONDoc, error) {
	return f.doc, f.getErr
}

func (f *fakeAssetService) GetAll(_ context.Context) (map[string]models.JSONDoc, error) {
	return f.all, f.getErr
}

func (f *fakeAssetService) Upsert(_ context.Context, _ string, _ models.JSONDoc) (*models.Asset, bool, error) {
	return f.asset, f.created, f.upErr
}

func newTestRouter(contactSvc interfaces.ContactService, assetSvc interfaces.AssetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.RegisterRoutes(r, &services.Services{
		ContactService: contactSvc,
		AssetService:   assetSvc,
	}, testLogger(), testAdminKey, "")
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.9:51234"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminHeaders() map[string]string {
	return map[string]string{"X-FOLIO-API-KEY": testAdminKey}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSubmit_Created(t *testing.T) {
	svc := &fakeContactService{submitID: "cmsg_abc123"}
	r := newTestRouter(svc, &fakeAssetService{})

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Alice",
		"email":   "alice@example.com",
		"subject": "Project inquiry",
		"message": "I would like to discuss a project with you.",
	}, map[string]string{"User-Agent": "test-agent"})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Your message has been sent successfully. Thank you for reaching out!", body["message"])

	assert.Equal(t, "Alice", svc.lastSubmission.Name)
	assert.Equal(t, "test-agent", svc.lastSubmission.UserAgent)
	assert.NotEmpty(t, svc.lastSubmission.SourceAddress)
}

func TestSubmit_MalformedBody(t *testing.T) {
	r := newTestRouter(&fakeContactService{}, &fakeAssetService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", decodeBody(t, w)["error"])
}

func TestSubmit_ValidationErrors(t *testing.T) {
	multi := apierrors.NewMultiErrors()
	multi.Add("name", "Name is required", nil)
	multi.Add("email", "Please provide a valid email address", nil)
	r := newTestRouter(&fakeContactService{submitErr: multi}, &fakeAssetService{})

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Validation failed", body["error"])
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Name is required", details["name"])
	assert.Equal(t, "Please provide a valid email address", details["email"])
}

func TestSubmit_RateLimited(t *testing.T) {
	r := newTestRouter(&fakeContactService{submitErr: er.ErrRateLimited}, &fakeAssetService{})

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{"name": "Alice"}, nil)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many contact form submissions, please try again later.", decodeBody(t, w)["error"])
}

func TestSubmit_InternalError(t *testing.T) {
	r := newTestRouter(&fakeContactService{submitErr: assert.AnError}, &fakeAssetService{})

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{"name": "Alice"}, nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error. Please try again later.", decodeBody(t, w)["error"])
}

func TestList_RequiresAPIKey(t *testing.T) {
	r := newTestRouter(&fakeContactService{}, &fakeAssetService{})

	w := doJSON(t, r, http.MethodGet, "/api/contact", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Missing API key", decodeBody(t, w)["error"])

	w = doJSON(t, r, http.MethodGet, "/api/contact", nil, map[string]string{"X-FOLIO-API-KEY": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid API key", decodeBody(t, w)["error"])
}

func TestList_PaginationShape(t *testing.T) {
	svc := &fakeContactService{
		messages: []*models.ContactMessage{},
		pagination: interfaces.Pagination{
			CurrentPage: 2,
			TotalPages:  4,
			TotalCount:  65,
			HasNext:     true,
			HasPrev:     true,
		},
	}
	r := newTestRouter(svc, &fakeAssetService{})

	w := doJSON(t, r, http.MethodGet, "/api/contact?page=2&limit=20&status=unread&includeSpam=true", nil, adminHeaders())

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["current"])
	assert.Equal(t, float64(4), pagination["pages"])
	assert.Equal(t, float64(65), pagination["total"])
	assert.Equal(t, true, pagination["hasNext"])
	assert.Equal(t, true, pagination["hasPrev"])

	assert.Equal(t, 2, svc.lastPage)
	assert.Equal(t, 20, svc.lastLimit)
	assert.Equal(t, "unread", svc.lastFilter.Status)
	assert.True(t, svc.lastFilter.IncludeSpam)
}

func TestList_DefaultsOnBadQuery(t *testing.T) {
	svc := &fakeContactService{}
	r := newTestRouter(svc, &fakeAssetService{})

	w := doJSON(t, r, http.MethodGet, "/api/contact?page=oops&limit=", nil, adminHeaders())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.lastPage)
	assert.Equal(t, 20, svc.lastLimit)
}

func TestUpdate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid id", er.ErrInvalidMessageID, http.StatusBadRequest, "Invalid message ID"},
		{"not found", er.ErrMessageNotFound, http.StatusNotFound, "Message not found"},
		{"store timeout", er.ErrConnectionTimeout, http.StatusInternalServerError, "Internal server error"},
		{"internal", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeContactService{updateErr: tt.err}, &fakeAssetService{})
			w := doJSON(t, r, http.MethodPatch, "/api/contact/cmsg_abc", gin.H{"status": "read"}, adminHeaders())
			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, w)["error"])
		})
	}
}

func TestUpdate_Success(t *testing.T) {
	svc := &fakeContactService{updated: &models.ContactMessage{ID: "cmsg_abc"}}
	r := newTestRouter(svc, &fakeAssetService{})

	w := doJSON(t, r, http.MethodPatch, "/api/contact/cmsg_abc", gin.H{"isSpam": true}, adminHeaders())

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Message updated successfully", body["message"])
	require.Contains(t, body, "data")
}

func TestDelete_Success(t *testing.T) {
	r := newTestRouter(&fakeContactService{}, &fakeAssetService{})

	w := doJSON(t, r, http.MethodDelete, "/api/contact/cmsg_abc", nil, adminHeaders())

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Message deleted successfully", body["message"])
}

func TestDelete_NotFound(t *testing.T) {
	r := newTestRouter(&fakeContactService{deleteErr: er.ErrMessageNotFound}, &fakeAssetService{})

	w := doJSON(t, r, http.MethodDelete, "/api/contact/cmsg_abc", nil, adminHeaders())

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Message not found", decodeBody(t, w)["error"])
}

func TestStats_Shape(t *testing.T) {
	svc := &fakeContactService{stats: &interfaces.ContactStats{
		Total: 10, Unread: 4, Read: 3, Replied: 3, Spam: 2, Today: 1,
	}}
	r := newTestRouter(svc, &fakeAssetService{})

	w := doJSON(t, r, http.MethodGet, "/api/contact/stats", nil, adminHeaders())

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(10), body["total"])
	assert.Equal(t, float64(4), body["unread"])
	assert.Equal(t, float64(3), body["read"])
	assert.Equal(t, float64(3), body["replied"])
	assert.Equal(t, float64(2), body["spam"])
	assert.Equal(t, float64(1), body["today"])
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(&fakeContactService{}, &fakeAssetService{})

	w := doJSON(t, r, http.MethodGet, "/health", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}
