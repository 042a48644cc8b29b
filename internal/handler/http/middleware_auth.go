package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based wallet sessions.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.WalletAuthService.ParseToken] and stores the wallet address in
// the request context under [utils.AddressCtxKey].
//
// Requests without a header, with a malformed header, or with an expired or
// invalid token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgNoAuthHeader, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.WalletAuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.AddressCtxKey, token.Address)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
