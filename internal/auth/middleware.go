package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "taskconnect/internal/errors"
	"taskconnect/internal/model"
	"taskconnect/internal/repository"
)

// contextKey is where the resolved caller is stored on the echo context.
const contextKey = "user"

// Middleware returns the authentication middleware for secured routes.
// For every request it validates the bearer token, resolves the subject to
// a full User row, and stores that user on the context. Token failures and
// unknown subjects produce the same 401 so a caller cannot distinguish a
// bad token from a deleted account.
func Middleware(issuer *TokenIssuer, users repository.UserRepository) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		// The trailing colon keeps echo-jwt from demanding a "Bearer "
		// prefix: the raw header value is taken as-is and Validate
		// tolerates both "Bearer <token>" and a bare token.
		TokenLookup: "header:" + echo.HeaderAuthorization + ":",
		ContextKey:  contextKey,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			subject, err := issuer.Validate(raw)
			if err != nil {
				return nil, err
			}
			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				return nil, apperrors.ErrInvalidToken
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Every failure mode gets the same response.
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// CurrentUser returns the caller resolved by Middleware, or nil on routes
// that did not pass through it.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(contextKey).(*model.User)
	return user
}
