package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegogutti007/sistema-golden-backend/internal/config"
	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

type stubVerifier map[string]model.Identity

func (s stubVerifier) VerifyToken(raw string) (model.Identity, error) {
	if raw == "" {
		return model.Identity{}, service.UnauthorizedError(service.MsgTokenRequired)
	}
	id, ok := s[raw]
	if !ok {
		return model.Identity{}, service.ForbiddenError(service.MsgTokenInvalid)
	}
	return id, nil
}

func newEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.Use(mw...)
	whoami := func(c echo.Context) error {
		id, _ := IdentityFrom(c)
		return c.JSON(http.StatusOK, echo.Map{"usuario_id": id.UserID, "rol": id.Role, "user_id": c.Get("user_id")})
	}
	e.GET("/api/me", whoami)
	e.GET("/api/auth/users", whoami, RequireRole("admin"))
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	return e
}

func do(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth(t *testing.T) {
	verifier := stubVerifier{
		"good":  {UserID: 7, Username: "dgutierrez", Role: "admin"},
		"staff": {UserID: 8, Username: "colaborador", Role: "empleado"},
	}
	e := newEcho(JWTAuth(verifier, "/health"))

	t.Run("public path", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Token de acceso requerido"}`, rec.Body.String())
	})

	t.Run("wrong scheme counts as missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic Zm9vOmJhcg==")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/me", "forged")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Token inválido o expirado"}`, rec.Body.String())
	})

	t.Run("valid token exposes identity", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/me", "good")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"usuario_id":7,"rol":"admin","user_id":7}`, rec.Body.String())
	})

	t.Run("role gate", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/api/auth/users", "good").Code)
		rec := do(e, http.MethodGet, "/api/auth/users", "staff")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Acceso denegado")
	})
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken("Token abc"))
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`[{"categoria_id":1}]`))
	require.NoError(t, err)

	status, got, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, `[{"categoria_id":1}]`, string(body))

	_, _, _, ok = decodePayload(bs[:6])
	assert.False(t, ok)
}

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCacheDegradesWithoutRedis(t *testing.T) {
	calls := 0
	handler := func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, []string{"Efectivo", "Yape"})
	}
	cfg := config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "test:cache"}

	for _, rdb := range []*redis.Client{nil, unreachableRedis(t)} {
		e := echo.New()
		e.GET("/api/tipo_pago", handler, NewRedisCache(cfg, rdb))
		rec := do(e, http.MethodGet, "/api/tipo_pago", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["Efectivo","Yape"]`, rec.Body.String())
	}
	assert.Equal(t, 2, calls)
}

func TestCacheKeyUsesRouteAndQuery(t *testing.T) {
	e := echo.New()
	keys := map[string]bool{}
	e.GET("/api/articulos", func(c echo.Context) error {
		keys[cacheKey("p", c)] = true
		return nil
	})
	do(e, http.MethodGet, "/api/articulos?search=uña", "")
	do(e, http.MethodGet, "/api/articulos?search=uña", "")
	do(e, http.MethodGet, "/api/articulos", "")
	assert.Len(t, keys, 2)
}

func TestRateLimitDegradesWithoutRedis(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Minute, TTL: time.Minute, Prefix: "test:rl"}
	e := echo.New()
	e.POST("/api/auth/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		NewTokenBucket(cfg, unreachableRedis(t), quietLogger()))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/api/auth/login", "").Code)
	}
}

func TestRateKey(t *testing.T) {
	e := echo.New()
	var key string
	e.POST("/api/auth/login", func(c echo.Context) error {
		key = rateKey("golden:rl", c)
		return nil
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.9")
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "golden:rl:ip:10.0.0.9:user:guest:route:POST /api/auth/login", key)
}

func TestRateLimitInProcessWithoutRedis(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 2, RefillTokens: 1, RefillInterval: time.Minute, TTL: 5 * time.Minute, Prefix: "test:rl"}
	e := echo.New()
	e.POST("/api/auth/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		NewTokenBucket(cfg, nil, quietLogger()))

	assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/api/auth/login", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/api/auth/login", "").Code)

	rec := do(e, http.MethodPost, "/api/auth/login", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Demasiados intentos")
}

func TestLocalBucketsRefill(t *testing.T) {
	cfg := config.RateLimitConfig{Capacity: 1, RefillTokens: 1, RefillInterval: 10 * time.Second, TTL: time.Minute}
	b := newLocalBuckets(cfg)
	clock := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return clock }

	d, _ := b.take(context.Background(), "k")
	assert.True(t, d.allowed)
	d, _ = b.take(context.Background(), "k")
	assert.False(t, d.allowed)
	assert.InDelta(t, float64(10*time.Second), float64(d.retry), float64(time.Millisecond))

	other, _ := b.take(context.Background(), "otro")
	assert.True(t, other.allowed)

	clock = clock.Add(10 * time.Second)
	d, _ = b.take(context.Background(), "k")
	assert.True(t, d.allowed)

	clock = clock.Add(2 * time.Minute)
	_, _ = b.take(context.Background(), "k")
	assert.Len(t, b.limiters, 1)
}
