package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoevent-admin-go/internal/models"
)

type stubPlanService struct {
	plans []*models.Plan
}

func (s *stubPlanService) List(ctx context.Context, activeOnly bool) ([]*models.Plan, error) {
	if !activeOnly {
		return s.plans, nil
	}
	out := []*models.Plan{}
	for _, p := range s.plans {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}
func (s *stubPlanService) ListByDuration(ctx context.Context, duration string) ([]*models.Plan, error) {
	out := []*models.Plan{}
	for _, p := range s.plans {
		if p.Duration == duration {
			out = append(out, p)
		}
	}
	return out, nil
}
func (s *stubPlanService) GetByID(ctx context.Context, id string) (*models.Plan, error) {
	return nil, nil
}
func (s *stubPlanService) MostPopular(ctx context.Context) (*models.Plan, error) { return nil, nil }
func (s *stubPlanService) Create(ctx context.Context, input models.PlanInput) models.MutationResult {
	if len(models.TrimFeatures(input.Features)) == 0 {
		return models.MutationFail("At least one feature is required")
	}
	return models.MutationOK("Subscription plan created successfully", "new-id")
}
func (s *stubPlanService) Update(ctx context.Context, id string, input models.PlanUpdate) models.MutationResult {
	return models.MutationOK("Subscription plan updated successfully", id)
}
func (s *stubPlanService) SetActive(ctx context.Context, id string, active bool) models.MutationResult {
	return models.MutationOK("ok", id)
}
func (s *stubPlanService) Delete(ctx context.Context, id string) models.MutationResult {
	return models.MutationOK("ok", id)
}
func (s *stubPlanService) DeleteMany(ctx context.Context, ids []string) models.MutationResult {
	return models.MutationOK("ok", "")
}

func newPlanRouter(plans ...*models.Plan) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewPlanHandler(&stubPlanService{plans: plans})
	router := gin.New()
	router.GET("/subscriptions", handler.List)
	router.POST("/subscriptions", handler.Create)
	return router
}

func samplePlans() []*models.Plan {
	return []*models.Plan{
		{ID: "1", Name: "Basic", Price: 99, Duration: "monthly", IsActive: true},
		{ID: "2", Name: "Pro", Price: 499, Duration: "six-month", IsActive: true},
		{ID: "3", Name: "Enterprise", Price: 999, Duration: "yearly", IsActive: false},
	}
}

type planListResponse struct {
	Records  []*models.Plan `json:"records"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

func TestPlanListPipelineParams(t *testing.T) {
	router := newPlanRouter(samplePlans()...)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/subscriptions?q=pro&sort=price&dir=desc&page=1&pageSize=10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp planListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Pro", resp.Records[0].Name)
}

func TestPlanListDefaultsAndPaging(t *testing.T) {
	router := newPlanRouter(samplePlans()...)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/subscriptions?page=2&pageSize=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp planListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Enterprise", resp.Records[0].Name)
	assert.Equal(t, 2, resp.Page)
}

func TestPlanListActiveFilter(t *testing.T) {
	router := newPlanRouter(samplePlans()...)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/subscriptions?active=true", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp planListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestPlanCreateMutationContract(t *testing.T) {
	router := newPlanRouter()

	// Validation failure is still a 200 carrying success=false.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions",
		strings.NewReader(`{"name":"X","duration":"monthly","features":["",""]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result models.MutationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "At least one feature is required", result.Message)

	// Malformed JSON is the transport's problem: 400.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
