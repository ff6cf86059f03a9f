package security

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"medical-directory/internal/apperror"
	"medical-directory/internal/model"
	"medical-directory/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// AccessVerifier : answers whether an access token is valid, without an error channel
type AccessVerifier interface {
	VerifyAccess(token string) (*Claims, bool)
}

type PrincipalLoader interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// JWTMiddleware : authenticates the request with a bearer access token and
// attaches the public user projection to its context
func JWTMiddleware(verifier AccessVerifier, users PrincipalLoader, responder *util.Responder) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(verifier, users, responder, next))
	}
}

func handleAuthentication(verifier AccessVerifier, users PrincipalLoader, responder *util.Responder, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if !strings.HasPrefix(authorizationHeader, "Bearer ") {
			responder.Error(writer, apperror.ErrAccessTokenMissing)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
		if token == "" {
			responder.Error(writer, apperror.ErrAccessTokenMissing)
			return
		}

		claims, ok := verifier.VerifyAccess(token)
		if !ok {
			responder.Error(writer, apperror.ErrAccessTokenInvalid)
			return
		}

		user, err := users.FindByID(request.Context(), claims.UserID)
		if errors.Is(err, apperror.ErrNotFound) {
			responder.Error(writer, apperror.ErrPrincipalNotFound)
			return
		}
		if err != nil {
			responder.Error(writer, err)
			return
		}

		next.ServeHTTP(writer, request.WithContext(WithUser(request.Context(), user.Public())))
	}
}

func WithUser(ctx context.Context, user *model.PublicUser) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

func GetUserFromContext(ctx context.Context) (*model.PublicUser, error) {
	user, ok := ctx.Value(UserContextKey).(*model.PublicUser)
	if !ok || user == nil {
		return nil, apperror.Validation("user not authenticated")
	}
	return user, nil
}
