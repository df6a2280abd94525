package v1handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"gridscan/pkg/serrors"
)

type ctxKey string

// SubjectKey is the context key under which the authenticated subject is stored.
const SubjectKey ctxKey = "Subject"

// BearerAuth returns a middleware that validates HS256-signed bearer tokens
// against the given secret and stores the token subject in the request context.
func BearerAuth(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || raw == "" {
				writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
				return key, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "invalid bearer token"))

				return
			}

			subject, _ := token.Claims.GetSubject()
			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
