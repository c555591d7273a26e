package utils // package utils provides helpers for session tokens and password hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
)

// ErrInvalidToken is returned for any token that fails parsing, signature
// or expiry checks. Callers must not distinguish the reasons to clients.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the payload of a session token. The claim names match the
// tokens issued by the previous backend so existing front ends keep working.
type SessionClaims struct {
	UserID   int64  `json:"usuario_id"`
	Username string `json:"usuario"`
	Role     string `json:"rol"`
	jwt.RegisteredClaims
}

// SessionToken is a signed token along with its expiry.
type SessionToken struct {
	Token string
	Exp   time.Time
}

// NewSessionToken signs an HS256 token for id that expires ttl after now.
func NewSessionToken(secret string, id model.Identity, ttl time.Duration, now time.Time) (SessionToken, error) {
	if secret == "" {
		return SessionToken{}, errors.New("empty signing secret")
	}
	now = now.UTC()
	exp := now.Add(ttl)
	claims := SessionClaims{
		UserID:   id.UserID,
		Username: id.Username,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies signature, algorithm and expiry of raw as of
// now and returns the identity it carries.
func ParseSessionToken(secret, raw string, now time.Time) (model.Identity, error) {
	claims := &SessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !tok.Valid {
		return model.Identity{}, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return model.Identity{}, ErrInvalidToken
	}
	return model.Identity{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, nil
}
