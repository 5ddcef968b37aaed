package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// newIdempotentRouter chains auth before idempotency, as the real router
// does. The redis client points nowhere; requests that reach redis fall
// through to the handler, which is enough for these cases.
func newIdempotentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})

	router := gin.New()
	router.Use(AuthMiddleware(testSecret))
	router.Use(IdempotencyMiddleware(client))
	router.POST("/v1/reviews", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"handled": true})
	})
	return router
}

func TestIdempotency_UnauthenticatedRequestRejectedNotReplayed(t *testing.T) {
	router := newIdempotentRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/reviews", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
}

func TestIdempotency_AuthenticatedRequestReachesHandler(t *testing.T) {
	router := newIdempotentRouter()
	token := signToken(t, testSecret, "tourist-1", "tourist", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/v1/reviews", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", "key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"handled":true`)
}

func TestIdempotencyCacheKey_ScopedByPrincipalAndPath(t *testing.T) {
	base := idempotencyCacheKey("tourist-1", "/v1/reviews", "key-1")

	assert.NotEqual(t, base, idempotencyCacheKey("tourist-2", "/v1/reviews", "key-1"),
		"same key from another principal must not collide")
	assert.NotEqual(t, base, idempotencyCacheKey("tourist-1", "/v1/payments/paypal", "key-1"),
		"same key against another endpoint must not collide")
	assert.Equal(t, base, idempotencyCacheKey("tourist-1", "/v1/reviews", "key-1"))
}
