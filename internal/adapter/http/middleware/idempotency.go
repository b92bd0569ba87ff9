package middleware

import (
	"context"
	"net/http"
	"strings"

	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyStore claims request keys for a TTL.
type IdempotencyStore interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// Idempotency rejects a repeated lifecycle request carrying the same Idempotency-Key while the
// first one is remembered (409 DUPLICATE_REQUEST). Requests without the header pass through. A
// request that fails releases its key so the client can retry with it.
//
// When the store is unavailable the request proceeds; the conditional writes still prevent a
// double transition.
func Idempotency(store IdempotencyStore, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if header == "" || store == nil {
			c.Next()
			return
		}

		actor, _ := ActorFrom(c)
		key := actor.ID + ":" + c.Request.Method + ":" + c.Request.URL.Path + ":" + header

		claimed, err := store.Claim(c.Request.Context(), key)
		if err != nil {
			log.Warn("idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !claimed {
			abort(c, pkg.NewDomainErrorSimple("DUPLICATE_REQUEST", "Request already submitted", http.StatusConflict))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Release(context.WithoutCancel(c.Request.Context()), key); err != nil {
				log.Warn("idempotency release failed", zap.Error(err))
			}
		}
	}
}
