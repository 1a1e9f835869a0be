package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Verifier validates bearer tokens issued by the identity service and
// extracts the calling principal.
type Verifier interface {
	Verify(token string) (*model.Principal, error)
	Name() string
}

type Options struct {
	Leeway time.Duration
}

// JWTVerifier validates HS256 signed tokens carrying subject and role claims.
type JWTVerifier struct {
	secret []byte
	leeway time.Duration
}

// NewJWTVerifier builds JWTVerifier with provided secret and options.
func NewJWTVerifier(secret string, opts Options) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), leeway: opts.Leeway}
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verify parses and validates token, returning the embedded principal.
func (v *JWTVerifier) Verify(token string) (*model.Principal, error) {
	claims := &tokenClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithLeeway(v.leeway))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	role := claims.Role
	if role == "" {
		role = model.RoleClient
	}

	return &model.Principal{ID: claims.Subject, Role: role}, nil
}

func (v *JWTVerifier) Name() string {
	return "jwt-hs256"
}
