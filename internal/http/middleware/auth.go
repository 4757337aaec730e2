package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"service-motorizado/internal/logx"
)

// Authenticator resolves a bearer token to a courier id.
type Authenticator interface {
	Authenticate(token string) (string, error)
}

type ctxKey int

const (
	courierKey ctxKey = iota
	tokenKey
)

// Auth rejects requests without a valid bearer token and stores the courier id in the context.
func Auth(a Authenticator, logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}
			courierID, err := a.Authenticate(token)
			if err != nil {
				logger.Debug("authentication failed",
					logx.String("request_id", chimw.GetReqID(r.Context())),
					logx.Err(err),
				)
				unauthorized(w, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCourier(r.Context(), courierID, token)))
		})
	}
}

// CourierID returns the authenticated courier id.
func CourierID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(courierKey).(string)
	return id, ok && id != ""
}

// Token returns the bearer token of the authenticated request.
func Token(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok && t != ""
}

// WithCourier returns ctx carrying an authenticated courier and token.
func WithCourier(ctx context.Context, courierID, token string) context.Context {
	ctx = context.WithValue(ctx, courierKey, courierID)
	return context.WithValue(ctx, tokenKey, token)
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
