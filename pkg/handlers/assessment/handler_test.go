package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/reliability-atlas/pkg/models/api"
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/services/catalog"
	"github.com/de-tools/reliability-atlas/pkg/services/runs"
)

type mockController struct {
	mock.Mock
}

func (m *mockController) Start(ctx context.Context, scope domain.Scope) (string, error) {
	args := m.Called(ctx, scope)
	return args.String(0), args.Error(1)
}

func (m *mockController) Get(ctx context.Context, id string) (domain.AssessmentRun, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AssessmentRun), args.Error(1)
}

func (m *mockController) List(ctx context.Context) []domain.AssessmentRun {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AssessmentRun)
}

func (m *mockController) Cancel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testCatalogService() catalog.Service {
	return catalog.NewService([]domain.RecommendationDefinition{
		{
			GUID:         "33333333-0000-0000-0000-000000000001",
			ResourceType: "Microsoft.Compute/virtualMachines",
			State:        domain.StateActive,
			Category:     "HighAvailability",
		},
	}, nil)
}

func withRunParam(req *http.Request, id string) *http.Request {
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

func TestStartRun_Accepted(t *testing.T) {
	ctrl := new(mockController)
	ctrl.On("Start", mock.Anything, mock.MatchedBy(func(s domain.Scope) bool {
		return s.TenantID == "t1" && len(s.Tags) == 1 && s.Tags[0] == (domain.TagFilter{Key: "env", Value: "prod"})
	})).Return("run-1", nil)
	ctrl.On("Get", mock.Anything, "run-1").Return(domain.AssessmentRun{
		RunID:     "run-1",
		Status:    domain.RunStatusRunning,
		StartedAt: time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
	}, nil)
	handler := NewHandler(ctrl, testCatalogService())

	body := `{"tenantId":"t1","tags":["env=prod"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.StartRun(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var response api.RunStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "run-1", response.RunID)
	assert.Equal(t, string(domain.RunStatusRunning), response.Status)
	ctrl.AssertExpectations(t)
}

func TestStartRun_InvalidBody(t *testing.T) {
	handler := NewHandler(new(mockController), testCatalogService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	handler.StartRun(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartRun_MissingTenant(t *testing.T) {
	handler := NewHandler(new(mockController), testCatalogService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader(`{"subscriptionIds":["sub-1"]}`))
	rec := httptest.NewRecorder()

	handler.StartRun(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "tenant id is required")
}

func TestGetRun_ReturnsReport(t *testing.T) {
	finished := time.Date(2025, 8, 1, 10, 5, 0, 0, time.UTC)
	ctrl := new(mockController)
	ctrl.On("Get", mock.Anything, "run-1").Return(domain.AssessmentRun{
		RunID:      "run-1",
		Status:     domain.RunStatusSucceeded,
		StartedAt:  finished.Add(-5 * time.Minute),
		FinishedAt: &finished,
		Report: &domain.Report{
			Run: domain.RunMetadata{RunID: "run-1", TenantID: "t1"},
		},
	}, nil)
	handler := NewHandler(ctrl, testCatalogService())

	req := withRunParam(httptest.NewRequest(http.MethodGet, "/api/v1/runs/run-1", nil), "run-1")
	rec := httptest.NewRecorder()

	handler.GetRun(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.RunStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, string(domain.RunStatusSucceeded), response.Status)
	require.NotNil(t, response.Report)
	assert.Equal(t, "t1", response.Report.Run.TenantID)
}

func TestGetRun_NotFound(t *testing.T) {
	ctrl := new(mockController)
	ctrl.On("Get", mock.Anything, "nope").
		Return(domain.AssessmentRun{}, fmt.Errorf("%w: nope", runs.ErrNotFound))
	handler := NewHandler(ctrl, testCatalogService())

	req := withRunParam(httptest.NewRequest(http.MethodGet, "/api/v1/runs/nope", nil), "nope")
	rec := httptest.NewRecorder()

	handler.GetRun(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRuns_StripsReports(t *testing.T) {
	ctrl := new(mockController)
	ctrl.On("List", mock.Anything).Return([]domain.AssessmentRun{
		{RunID: "run-1", Status: domain.RunStatusSucceeded, Report: &domain.Report{}},
	})
	handler := NewHandler(ctrl, testCatalogService())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	rec := httptest.NewRecorder()

	handler.ListRuns(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response []api.RunStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Nil(t, response[0].Report)
}

func TestCancelRun(t *testing.T) {
	ctrl := new(mockController)
	ctrl.On("Cancel", mock.Anything, "run-1").Return(nil)
	ctrl.On("Get", mock.Anything, "run-1").Return(domain.AssessmentRun{
		RunID:  "run-1",
		Status: domain.RunStatusCanceled,
	}, nil)
	handler := NewHandler(ctrl, testCatalogService())

	req := withRunParam(httptest.NewRequest(http.MethodDelete, "/api/v1/runs/run-1", nil), "run-1")
	rec := httptest.NewRecorder()

	handler.CancelRun(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.RunStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, string(domain.RunStatusCanceled), response.Status)
	ctrl.AssertExpectations(t)
}

func TestGetCatalog(t *testing.T) {
	handler := NewHandler(new(mockController), testCatalogService())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()

	handler.GetCatalog(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response []api.CatalogEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "33333333-0000-0000-0000-000000000001", response[0].GUID)
}
