package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/tokenpkg"
	"github.com/go-petr/self-bank/pkg/web"
)

const (
	// AuthHeaderKey is the header carrying the access token.
	AuthHeaderKey = "authorization"
	// AuthTypeBearer is the only supported authorization type.
	AuthTypeBearer = "bearer"
	// AuthPayloadKey stores the verified token payload in the gin context.
	AuthPayloadKey = "authorization_payload"
	// AppUserKey stores the resolved app user in the gin context.
	AppUserKey = "authorization_app_user"
)

var (
	// ErrAuthHeaderNotFound indicates a missing authorization header.
	ErrAuthHeaderNotFound = errors.New("authorization header is not provided")
	// ErrInvalidAuthHeaderFormat indicates a malformed authorization header.
	ErrInvalidAuthHeaderFormat = errors.New("invalid authorization header format")
)

// UserGetter resolves the authenticated username to the app user identity.
type UserGetter interface {
	Get(ctx context.Context, username string) (domain.AppUser, error)
}

// UserGetterFunc adapts a function to the UserGetter interface.
type UserGetterFunc func(ctx context.Context, username string) (domain.AppUser, error)

// Get calls f.
func (f UserGetterFunc) Get(ctx context.Context, username string) (domain.AppUser, error) {
	return f(ctx, username)
}

// AuthMiddleware verifies the bearer token and resolves the app user
// before passing the request on.
func AuthMiddleware(tokenMaker tokenpkg.Maker, users UserGetter) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		authHeader := gctx.GetHeader(AuthHeaderKey)
		if len(authHeader) == 0 {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrAuthHeaderNotFound))
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrInvalidAuthHeaderFormat))
			return
		}

		authType := strings.ToLower(fields[0])
		if authType != AuthTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authType)
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		accessToken := fields[1]

		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		user, err := users.Get(gctx.Request.Context(), payload.Username)
		if err != nil {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(domain.ErrUserNotFound))
			return
		}

		gctx.Set(AuthPayloadKey, payload)
		gctx.Set(AppUserKey, user)
		gctx.Next()
	}
}

// AddAuthorization sets a fresh bearer token on the request. Test helper.
func AddAuthorization(r *http.Request, tokenMaker tokenpkg.Maker, authType, username string, duration time.Duration) error {
	token, _, err := tokenMaker.CreateToken(username, duration)
	if err != nil {
		return err
	}

	r.Header.Set(AuthHeaderKey, fmt.Sprintf("%s %s", authType, token))

	return nil
}
