package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	mock_repository "github.com/pluscontrol/plus-control-api/internal/domain/repository/mocks"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/observability"
	"github.com/pluscontrol/plus-control-api/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := utils.NewJWTManager("secret", "plus-control-api", time.Hour)
	userID := uuid.New()
	token, err := jwtManager.GenerateAccessToken(userID, "ana@pluscontrol.cl", "admin")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", AuthMiddleware(jwtManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.MustGet(ContextUserID), "role": c.GetString(ContextUserRole)})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
				assert.Contains(t, w.Body.String(), `"role":"admin"`)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.POST("/rules", func(c *gin.Context) {
		c.Set(ContextUserRole, c.GetHeader("X-Role"))
		c.Next()
	}, RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for role, want := range map[string]int{"admin": http.StatusCreated, "operator": http.StatusForbidden, "": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodPost, "/rules", nil)
		req.Header.Set("X-Role", role)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "role %q", role)
	}
}

func idempotentRouter(t *testing.T, userID uuid.UUID, status int, calls *int) (*gin.Engine, *mock_repository.MockIdempotencyRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockIdempotencyRepository(ctrl)

	r := gin.New()
	r.POST("/quotes/:id/delivery", func(c *gin.Context) {
		c.Set(ContextUserID, userID)
		c.Next()
	}, Idempotency(IdempotencyConfig{Repo: repo, TTL: time.Hour, Logger: zerolog.Nop()}), func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"ok": status < 300})
	})
	return r, repo
}

func TestIdempotency_StoresSuccessAndReplays(t *testing.T) {
	userID := uuid.New()
	calls := 0
	r, repo := idempotentRouter(t, userID, http.StatusCreated, &calls)

	var stored *entity.IdempotencyKey
	repo.EXPECT().GetByKey(gomock.Any(), "k-1", userID).Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k *entity.IdempotencyKey) error {
		stored = k
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/quotes/q1/delivery", nil)
	req.Header.Set(IdempotencyKeyHeader, "k-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stored)
	assert.Equal(t, "POST /quotes/q1/delivery", stored.Endpoint)
	assert.JSONEq(t, `{"ok":true}`, stored.ResponseBody)

	repo.EXPECT().GetByKey(gomock.Any(), "k-1", userID).Return(stored, nil)
	req = httptest.NewRequest(http.MethodPost, "/quotes/q1/delivery", nil)
	req.Header.Set(IdempotencyKeyHeader, "k-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 1, calls)
}

func TestIdempotency_RefusalIsNotStored(t *testing.T) {
	userID := uuid.New()
	calls := 0
	r, repo := idempotentRouter(t, userID, http.StatusUnprocessableEntity, &calls)
	repo.EXPECT().GetByKey(gomock.Any(), "k-2", userID).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/quotes/q1/delivery", nil)
	req.Header.Set(IdempotencyKeyHeader, "k-2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotency_KeyReusedOnAnotherEndpoint(t *testing.T) {
	userID := uuid.New()
	calls := 0
	r, repo := idempotentRouter(t, userID, http.StatusCreated, &calls)
	repo.EXPECT().GetByKey(gomock.Any(), "k-3", userID).Return(&entity.IdempotencyKey{
		Key:          "k-3",
		UserID:       userID,
		Endpoint:     "POST /quotes/other/delivery",
		ResponseCode: http.StatusCreated,
		ResponseBody: `{}`,
		ExpiresAt:    time.Now().Add(time.Hour),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/quotes/q1/delivery", nil)
	req.Header.Set(IdempotencyKeyHeader, "k-3")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, calls)
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	calls := 0
	r, _ := idempotentRouter(t, uuid.New(), http.StatusCreated, &calls)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quotes/q1/delivery", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
}

func TestClientRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := NewClientRateLimiter(ctx, RateLimiterConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	r := gin.New()
	r.GET("/x", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// a different client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "192.0.2.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterConfigFor(t *testing.T) {
	cfg := RateLimiterConfigFor(120, 60)
	assert.InDelta(t, 2.0, cfg.RequestsPerSecond, 1e-9)
	assert.Equal(t, 120, cfg.BurstSize)

	cfg = RateLimiterConfigFor(0, 0)
	assert.Equal(t, 100, cfg.BurstSize)
}

func TestLoggerAndMetricsMiddleware(t *testing.T) {
	var buf strings.Builder
	reg := prometheus.NewRegistry()
	m := observability.NewHTTPMetrics("test", reg)

	r := gin.New()
	r.Use(LoggerMiddleware(zerolog.New(&buf)), MetricsMiddleware(m))
	r.GET("/quotes/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/quotes/123", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"route":"/quotes/:id"`)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReqTotal.WithLabelValues(http.MethodGet, "/quotes/:id", "204")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}
