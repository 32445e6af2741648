// Package token issues and verifies the stateless bearer tokens handed out
// by the confirmation-code exchange.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"yamdb-backend/internal/config"
	"yamdb-backend/internal/models"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultLeeway = 30 * time.Second

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of an access token. Subject carries the user id.
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(cfg config.JWTConfig) *Issuer {
	return &Issuer{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.AccessTTL,
		now:    time.Now,
	}
}

// Issue returns a signed access token for user.
func (i *Issuer) Issue(user *models.User) (string, error) {
	now := i.now().UTC()
	claims := Claims{
		UserID:    user.ID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates raw and returns the id of the user it was issued to.
func (i *Issuer) Verify(raw string) (uint, error) {
	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(defaultLeeway),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		if err == nil {
			err = ErrInvalidToken
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}
	return uint(id), nil
}
