package identity

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrInvalidToken indicates the token failed to parse or verify
var ErrInvalidToken = errors.New("invalid auth token")

// adminClaim is the private JWT claim carrying the admin flag
const adminClaim = "adm"

// TokenCodec issues and verifies the HS256 JWTs carried in the
// x-auth-token header.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec signing with the given secret.
// Tokens expire after ttl.
func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Issue signs a token for the given identity.
func (c *TokenCodec) Issue(id Identity) (string, error) {
	now := time.Now()
	tok, err := jwt.NewBuilder().
		Subject(strconv.FormatInt(id.UserID, 10)).
		IssuedAt(now).
		Expiration(now.Add(c.ttl)).
		Claim(adminClaim, id.IsAdmin).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, c.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return string(signed), nil
}

// Verify parses and validates a token, returning the identity it carries.
// Expired or tampered tokens return ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (Identity, error) {
	tok, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, c.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(tok.Subject(), 10, 64)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	isAdmin := false
	if v, ok := tok.Get(adminClaim); ok {
		if b, ok := v.(bool); ok {
			isAdmin = b
		}
	}

	return Identity{UserID: userID, IsAdmin: isAdmin}, nil
}
