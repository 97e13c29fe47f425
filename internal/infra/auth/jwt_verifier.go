// Package auth verifies access tokens issued by the account service.
package auth

import (
	"tourist/config"
	"tourist/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

var (
	ErrMissingSecret    = errors.New("jwt access secret must be provided")
	ErrInvalidTokenType = errors.New("token is not an access token")
	ErrInvalidSubject   = errors.New("token subject is not a valid user id")
)

type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier builds an HMAC verifier for access tokens.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}

	return &jwtVerifier{secret: []byte(cfg.SecretKey.Access)}, nil
}

// Verify checks signature and expiry, rejects refresh tokens, and returns the subject.
func (v *jwtVerifier) Verify(tokenString string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse token")
	}

	if tokenType, ok := claims["type"]; ok && tokenType != accessTokenType {
		return uuid.Nil, ErrInvalidTokenType
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to read subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrInvalidSubject
	}

	return userID, nil
}
