package service

import "github.com/google/uuid"

// TokenVerifier validates access tokens issued by the account service.
type TokenVerifier interface {
	// Verify checks signature, expiry and token type and returns the subject user ID.
	Verify(tokenString string) (uuid.UUID, error)
}
