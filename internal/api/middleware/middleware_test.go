package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/pkg/logger"
	"github.com/docaid/DocAid-BookingService/pkg/metrics"
)

func whoAmI(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		userID = "anonymous"
	}
	if IsAdmin(r.Context()) {
		userID += "+admin"
	}
	_, _ = w.Write([]byte(userID))
}

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestRequired_HeaderMode(t *testing.T) {
	auth := NewAuthenticator("", logger.Nop())
	h := auth.Required(http.HandlerFunc(whoAmI))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set(HeaderUserID, "u1")
	req.Header.Set(HeaderUserRole, "Admin")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1+admin", rec.Body.String())
}

func TestRequired_JWTMode(t *testing.T) {
	const secret = "test-secret"
	auth := NewAuthenticator(secret, logger.Nop())
	h := auth.Required(http.HandlerFunc(whoAmI))

	valid := signToken(t, secret, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "u42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u42", rec.Body.String())

	tests := map[string]string{
		"wrong secret": "Bearer " + signToken(t, "other", Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}),
		"expired": "Bearer " + signToken(t, secret, Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}}),
		"no subject": "Bearer " + signToken(t, secret, Claims{Role: "admin"}),
		"not bearer": "Basic dTE6cHc=",
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	// в режиме JWT заголовок X-User-ID игнорируется
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "u1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptional(t *testing.T) {
	auth := NewAuthenticator("", logger.Nop())
	h := auth.Optional(http.HandlerFunc(whoAmI))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "anonymous", rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "u7")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "u7", rec.Body.String())
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/doctors/{doctorId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/doctors/dr-x", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/doctors/dr-y", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/doctors/{doctorId}", "404")))
}

func TestRecover(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
