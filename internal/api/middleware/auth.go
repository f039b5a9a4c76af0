package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	adminKey  contextKey = "admin"
)

// Заголовки для доверенного режима без JWT
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// RoleAdmin роль администратора
const RoleAdmin = "admin"

var errNoCredentials = errors.New("no credentials")

// Claims полезная нагрузка токена: sub - ID пользователя, role - опциональная роль
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Authenticator определяет пользователя запроса.
// С секретом проверяет Bearer токен HS256, без секрета доверяет заголовку X-User-ID.
type Authenticator struct {
	secret []byte
	logger Logger
}

// NewAuthenticator создаёт аутентификатор
func NewAuthenticator(secret string, logger Logger) *Authenticator {
	a := &Authenticator{logger: logger}
	if secret != "" {
		a.secret = []byte(secret)
	}
	return a
}

// Required пропускает только запросы с пользователем
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, admin, err := a.identify(r)
		if err != nil {
			a.logger.Warn("%s %s - unauthorized: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID, admin)))
	})
}

// Optional добавляет пользователя в контекст, если он указан; анонимные запросы проходят
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, admin, err := a.identify(r)
		switch {
		case err == nil:
			r = r.WithContext(withUser(r.Context(), userID, admin))
		case !errors.Is(err, errNoCredentials):
			a.logger.Warn("%s %s - unauthorized: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, "invalid credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) identify(r *http.Request) (string, bool, error) {
	if a.secret == nil {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			return "", false, errNoCredentials
		}
		return userID, strings.EqualFold(r.Header.Get(HeaderUserRole), RoleAdmin), nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false, errNoCredentials
	}
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false, errors.New("authorization header must be a Bearer token")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", false, fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" {
		return "", false, errors.New("token has no subject")
	}
	return claims.Subject, strings.EqualFold(claims.Role, RoleAdmin), nil
}

func withUser(ctx context.Context, userID string, admin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, adminKey, admin)
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// IsAdmin true для администратора
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}

// WithUser кладёт пользователя в контекст. Используется в тестах обработчиков.
func WithUser(ctx context.Context, userID string, admin bool) context.Context {
	return withUser(ctx, userID, admin)
}
