package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pasarku-be/internal/user"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// -- Authentication --
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")

	// -- Authorization --
	ErrWrongRole = errors.New("insufficient role")
)

type Claims struct {
	UserID uint      `json:"user_id"`
	Email  string    `json:"email"`
	Role   user.Role `json:"role"`
	jwt.RegisteredClaims
}

// Guard issues and verifies bearer tokens. The signing secret and token
// lifetime are injected once at startup; nothing here reads the environment.
type Guard struct {
	secret []byte
	ttl    time.Duration
}

func NewGuard(secret string, ttl time.Duration) *Guard {
	return &Guard{secret: []byte(secret), ttl: ttl}
}

func (g *Guard) Issue(u user.User) (string, error) {
	if len(g.secret) == 0 {
		return "", errors.New("JWT secret is not set")
	}

	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verify parses tokenStr and, when requiredRole is non-nil, enforces it.
// ErrMissingToken and ErrInvalidToken are unauthorized; ErrWrongRole is
// forbidden (valid identity, wrong role).
func (g *Guard) Verify(tokenStr string, requiredRole *user.Role) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return g.secret, nil
		},
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if requiredRole != nil && claims.Role != *requiredRole {
		return nil, ErrWrongRole
	}

	return claims, nil
}

// ExtractBearer pulls the token out of "Authorization: Bearer <token>".
func ExtractBearer(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
