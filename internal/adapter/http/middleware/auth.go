package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	actorKey = "actor"

	NotifySecretHeader = "X-Notify-Secret"
)

// Claims are the bearer token claims issued by the auth provider. user_type is read from the
// top level first, then from user_metadata.
type Claims struct {
	Email        string       `json:"email"`
	UserType     string       `json:"user_type"`
	UserMetadata userMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

type userMetadata struct {
	UserType string `json:"user_type"`
}

func (c Claims) Role() entities.UserType {
	role := c.UserType
	if role == "" {
		role = c.UserMetadata.UserType
	}
	return entities.UserType(strings.ToLower(strings.TrimSpace(role)))
}

var errInvalidClaims = errors.New("token has no subject")

// Authenticator validates HS256 bearer tokens signed with the auth provider's secret.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errInvalidClaims
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token (401) and stores the caller as the
// request actor.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization required", http.StatusUnauthorized))
			return
		}

		claims, err := a.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized))
			return
		}

		c.Set(actorKey, entities.Actor{ID: claims.Subject, Role: claims.Role(), Email: claims.Email})
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in roles (403).
func RequireRole(roles ...entities.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization required", http.StatusUnauthorized))
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden))
	}
}

// RequireNotifySecret guards trusted server-to-server endpoints with a shared secret header.
// An empty configured secret rejects every request.
func RequireNotifySecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(NotifySecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid notify secret", http.StatusUnauthorized))
			return
		}
		c.Set(actorKey, entities.SystemActor)
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok && actor.ID != ""
}

// SetActor is used by tests and internal callers to inject an actor.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
