// Package auth handles token parsing and the identity the sync engine
// runs under.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PowerUserGroup members may push product-code corrections upstream.
const PowerUserGroup = "GTIN_POWER_USER"

// AnonymousUID is the owner id before anyone has signed in.
const AnonymousUID = "unauthorized"

// User is the authenticated principal every derived item id is scoped
// to.
type User struct {
	ID     string
	Groups []string
}

// IsPowerUser reports membership in the product-code editor group.
func (u *User) IsPowerUser() bool {
	for _, group := range u.Groups {
		if group == PowerUserGroup {
			return true
		}
	}
	return false
}

// GenerateToken mints a signed token for a user. Used by the sign-in
// handler and by tests.
func GenerateToken(user *User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": user.ID,
		"groups":   user.Groups,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseUser validates a token and extracts the user it names.
func ParseUser(tokenString, secret string) (*User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, errors.New("token has no username")
	}
	user := &User{ID: username}
	if rawGroups, ok := claims["groups"].([]interface{}); ok {
		for _, raw := range rawGroups {
			if group, ok := raw.(string); ok {
				user.Groups = append(user.Groups, group)
			}
		}
	}
	return user, nil
}

type contextKey string

const userContextKey contextKey = "user"

// Middleware verifies bearer tokens and stores the user on the request
// context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			user, err := ParseUser(parts[1], secret)
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user, or nil outside the
// middleware.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userContextKey).(*User)
	return user
}
