package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/pagebound/pagebound/pkg/jwtx"
	"github.com/pagebound/pagebound/pkg/slogx"
)

// AuthnMiddleware gates protected routes on a valid bearer token. The
// rejection body is identical whether the credential is missing, malformed,
// forged or expired so callers cannot distinguish the failure cause; the
// real reason is logged for diagnostics.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			// Header lookup is case-insensitive via canonical form.
			authz := r.Header.Get("Authorization")
			if authz == "" {
				log.Warn("authn rejected", "reason", "missing_credential")
				writeBearerError(w)
				return
			}

			// Split on the first space; everything after it is the token.
			// We deliberately accept any scheme keyword here.
			raw := authz
			if i := strings.IndexByte(authz, ' '); i >= 0 {
				raw = strings.TrimSpace(authz[i+1:])
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("authn rejected", "reason", "invalid_credential", "err", err)
				writeBearerError(w)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				log.Warn("authn rejected", "reason", "expired_credential", "err", err)
				writeBearerError(w)
				return
			}

			// Inject into context for downstream handlers.
			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// writeBearerError emits the uniform 401 for every authentication failure.
// RFC 6750 header plus the service's JSON envelope.
func writeBearerError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteJSON(w, http.StatusUnauthorized, struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data"`
	}{
		Status:  "error",
		Message: "authentication required",
		Data:    nil,
	})
}
