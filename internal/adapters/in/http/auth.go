package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"agrimarket/internal/core/ports"
)

const sessionContextKey = "storefront.session"

// Authenticator turns a bearer JWT into a ports.Session. The raw token is
// kept on the session because the upstream API expects the same credential;
// this service never mints its own.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an authenticator over an HMAC signing secret.
func NewAuthenticator(secret []byte) *Authenticator {
	return &Authenticator{secret: secret}
}

// Middleware rejects requests without a valid bearer credential before any
// handler runs, so no upstream call is ever attempted unauthenticated.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := a.sessionFromRequest(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:         http.StatusUnauthorized,
					Message:      "Authentication required",
					AuthRequired: true,
				})
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

func (a *Authenticator) sessionFromRequest(r *http.Request) (ports.Session, error) {
	raw, ok := bearerToken(r.Header.Get(echo.HeaderAuthorization))
	if !ok {
		return ports.Session{}, fmt.Errorf("missing bearer credential")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return ports.Session{}, fmt.Errorf("invalid bearer credential: %w", err)
	}

	buyerID, err := token.Claims.GetSubject()
	if err != nil || buyerID == "" {
		return ports.Session{}, fmt.Errorf("credential carries no subject")
	}

	sess := ports.Session{BuyerID: buyerID, Token: raw}
	if err := sess.Validate(); err != nil {
		return ports.Session{}, err
	}
	return sess, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

func sessionFrom(c echo.Context) ports.Session {
	sess, _ := c.Get(sessionContextKey).(ports.Session)
	return sess
}
