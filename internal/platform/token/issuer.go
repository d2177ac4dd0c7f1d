package token

import "blog_backend/internal/feature/user/domain/entity"

// Issuer bundles the three per-purpose signers behind a single value.
// A token signed for one purpose never verifies for another because each
// signer holds its own secret.
type Issuer struct {
	activation *Signer
	session    *Signer
	reset      *Signer
}

// NewIssuer creates an Issuer from the per-purpose signers.
func NewIssuer(activation, session, reset *Signer) *Issuer {
	return &Issuer{activation: activation, session: session, reset: reset}
}

// SignActivation signs an activation token with the activation secret.
func (i *Issuer) SignActivation(pending *entity.User) (string, error) {
	return i.activation.SignActivation(pending)
}

// VerifyActivation verifies an activation token with the activation secret.
func (i *Issuer) VerifyActivation(tokenStr string) (*entity.User, error) {
	return i.activation.VerifyActivation(tokenStr)
}

// SignSession signs a session token with the session secret.
func (i *Issuer) SignSession(userID uint) (string, error) {
	return i.session.SignSession(userID)
}

// SignReset signs a reset token with the reset secret.
func (i *Issuer) SignReset(email, passwordHash string) (string, error) {
	return i.reset.SignReset(email, passwordHash)
}

// VerifyReset verifies a reset token with the reset secret.
func (i *Issuer) VerifyReset(tokenStr string) (string, string, error) {
	return i.reset.VerifyReset(tokenStr)
}
