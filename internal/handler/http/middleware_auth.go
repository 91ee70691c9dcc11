package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MauricioMilano/kwan-challenge/internal/logger"
	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
)

// auth is the access gate run before every protected route.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success attaches
// a typed [utils.AuthContext] (identity plus the parsed permission set) to
// the request context before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - The header is absent or not of the form "Bearer <token>" (fixed
//     format message).
//   - Token verification fails for any reason. The body carries only the
//     opaque invalid-token message; the cause is never echoed back.
//
// The gate does not enforce which permission a route needs; that is the
// per-operation job of [allowed].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteMessage(w, msgAuthHeaderRequired, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, err.Error(), http.StatusUnauthorized)
			return
		}

		// Attach the decoded identity and the permission set parsed from the
		// role's delimited string, so that downstream handlers never re-parse
		// the token or split strings themselves.
		authCtx := utils.AuthContext{
			UserID: token.UserID,
			Name:   token.Claims.Name,
			Email:  token.Claims.Email,
			Role:   token.Claims.Role,
			Permissions: models.ParsePermissions(
				token.Claims.Role.Permissions,
			),
		}
		ctx = context.WithValue(ctx, utils.AuthCtxKey, authCtx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the standard format:
//
//	Authorization: Bearer <token>
//
// Returns [ErrMalformedAuthorizationHeader] when the scheme is missing, not
// "Bearer", or the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrMalformedAuthorizationHeader
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return "", ErrMalformedAuthorizationHeader
	}

	return tokenString, nil
}
