// Package jwt implements generation and parsing of the portal session
// tokens with custom claim fields.
//
// CustomClaims extends the standard JWT claims with the user id, email and
// the role the backend assigned at login.
package jwt

import (
	"time"
)

// Maker describes the interface for generating and parsing session tokens.
type Maker interface {
	// GenerateToken signs a token for the given session identity.
	GenerateToken(userID int64, email, role string) (string, error)
	// ParseToken returns *CustomClaims when the token is valid.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker with an HMAC secret key and a token TTL.
type MakerImpl struct {
	secretKey string        // secret key signing the tokens
	tokenTTL  time.Duration // token lifetime
}

// NewJWTMaker creates a MakerImpl from a secret key and TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
