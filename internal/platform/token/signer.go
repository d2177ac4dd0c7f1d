// Package token provides JWT signing and verification for the three token
// purposes used by the service: account activation, login sessions and
// password reset. Each purpose gets its own Signer with its own secret and
// expiration, so a token issued for one purpose never verifies for another.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog_backend/internal/feature/user/domain/entity"
)

// ErrInvalidToken is returned when a token is malformed, tampered with,
// expired, or signed for a different purpose.
var ErrInvalidToken = errors.New("invalid or expired token")

// Signer signs and verifies JWT tokens for a single purpose.
type Signer struct {
	secret     []byte
	expiration time.Duration
}

// NewSigner creates a new Signer with the provided secret and expiration duration.
func NewSigner(secret string, expiration time.Duration) *Signer {
	return &Signer{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// activationClaims embeds a pending user's fields into an activation token.
// The user record does not exist yet; it is created at redemption time.
type activationClaims struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	ProfileImage string `json:"profileImage,omitempty"`
	jwt.RegisteredClaims
}

// resetClaims embeds a reset payload into a reset token.
type resetClaims struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	jwt.RegisteredClaims
}

// registered returns the standard claims with this signer's expiration applied.
func (s *Signer) registered(subject string) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
	}
}

// sign produces a signed HS256 token for the given claims.
func (s *Signer) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// parse verifies the signature and validity window of tokenStr and decodes
// it into claims. Only HMAC signing methods are accepted.
func (s *Signer) parse(tokenStr string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// SignActivation signs an activation token embedding the pending user's
// fields. The password must already be hashed by the caller.
func (s *Signer) SignActivation(pending *entity.User) (string, error) {
	return s.sign(activationClaims{
		Name:             pending.Name,
		Email:            pending.Email,
		PasswordHash:     pending.Password,
		ProfileImage:     pending.ProfileImage,
		RegisteredClaims: s.registered(pending.Email),
	})
}

// VerifyActivation verifies an activation token and reconstructs the pending
// user from its claims. The returned user has no ID; it has not been
// persisted yet.
func (s *Signer) VerifyActivation(tokenStr string) (*entity.User, error) {
	var claims activationClaims
	if err := s.parse(tokenStr, &claims); err != nil {
		return nil, err
	}
	return &entity.User{
		Name:         claims.Name,
		Email:        claims.Email,
		Password:     claims.PasswordHash,
		ProfileImage: claims.ProfileImage,
	}, nil
}

// SignSession signs a session token identifying an existing user.
func (s *Signer) SignSession(userID uint) (string, error) {
	return s.sign(s.registered(strconv.FormatUint(uint64(userID), 10)))
}

// VerifySession verifies a session token and returns the user ID it identifies.
func (s *Signer) VerifySession(tokenStr string) (uint, error) {
	var claims jwt.RegisteredClaims
	if err := s.parse(tokenStr, &claims); err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// SignReset signs a reset token carrying the email and the replacement
// password hash. The hash is applied only at redemption time.
func (s *Signer) SignReset(email, passwordHash string) (string, error) {
	return s.sign(resetClaims{
		Email:            email,
		PasswordHash:     passwordHash,
		RegisteredClaims: s.registered(email),
	})
}

// VerifyReset verifies a reset token and returns the email and password
// hash it carries.
func (s *Signer) VerifyReset(tokenStr string) (string, string, error) {
	var claims resetClaims
	if err := s.parse(tokenStr, &claims); err != nil {
		return "", "", err
	}
	return claims.Email, claims.PasswordHash, nil
}
