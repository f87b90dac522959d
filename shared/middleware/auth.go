package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/leerobin22/forum-api/shared/api"
	"github.com/leerobin22/forum-api/shared/domain"
	jwt_internal "github.com/leerobin22/forum-api/shared/jwt"
	"github.com/leerobin22/forum-api/shared/logger"
	"github.com/leerobin22/forum-api/shared/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// Sentinel errors for extractUser
var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// extractUser reads the bearer token and returns the user it was issued to.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return nil, errInvalidClaims
	}
	username, _ := claims["username"].(string)

	return &domain.User{Id: id, Username: username}, nil
}

// NeedAuth returns middleware that rejects requests without a valid token
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				message := "Invalid token"
				switch err {
				case errNoToken:
					message = "Missing authentication"
				case errInvalidClaims:
					logger.Log.Warn("invalid jwt claims")
				}
				utils.WriteJSON(w, http.StatusUnauthorized, api.UnauthorizedResponse{
					StatusCode: http.StatusUnauthorized,
					Error:      "Unauthorized",
					Message:    message,
				})
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser puts user into ctx the same way NeedAuth does.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserClaimsKey, user)
}
