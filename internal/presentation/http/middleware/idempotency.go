package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/response"
	"github.com/rs/zerolog"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// DefaultIdempotencyTTL is how long a stored response is replayed
	DefaultIdempotencyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo   repository.IdempotencyRepository
	TTL    time.Duration
	Logger zerolog.Logger
}

// bodyRecorder wraps gin.ResponseWriter to capture the response body
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a client retries a request
// with the same Idempotency-Key. Only 2xx responses are stored, so a refused
// delivery can be resubmitted with the same key once the problem is fixed.
// Requests without the header pass through.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		userID, ok := c.Get(ContextUserID)
		uid, isUUID := userID.(uuid.UUID)
		if !ok || !isUUID {
			c.Next()
			return
		}

		endpoint := c.Request.Method + " " + c.Request.URL.Path
		existing, err := cfg.Repo.GetByKey(c.Request.Context(), key, uid)
		if err != nil {
			cfg.Logger.Error().Err(err).Str("key", key).Msg("idempotency lookup failed")
			response.InternalServerError(c, "Failed to check idempotency key")
			c.Abort()
			return
		}
		if existing != nil && !existing.IsExpired() {
			if existing.Endpoint != endpoint {
				response.ErrorWithCode(c, http.StatusUnprocessableEntity, "Idempotency-Key was already used for a different request")
				c.Abort()
				return
			}
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status < 200 || status >= 300 {
			return
		}
		err = cfg.Repo.Create(c.Request.Context(), &entity.IdempotencyKey{
			Key:          key,
			UserID:       uid,
			Endpoint:     endpoint,
			ResponseCode: status,
			ResponseBody: rec.body.String(),
			ExpiresAt:    time.Now().Add(ttl),
		})
		if err != nil {
			cfg.Logger.Warn().Err(err).Str("key", key).Msg("idempotency key not stored")
		}
	}
}
