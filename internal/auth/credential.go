package auth

import (
	"context"
	"errors"
)

// Outcomes of the platform credential check, beyond plain failure.
var (
	// ErrCredentialUnsupported means the host has no platform
	// authenticator at all. Surfaced once, then the feature is disabled.
	ErrCredentialUnsupported = errors.New("auth: platform credential not supported")

	// ErrNoCredential means the ceremony is available but no credential
	// has been registered yet.
	ErrNoCredential = errors.New("auth: no credential registered")

	// ErrCredentialDenied means the check ran and the user failed it.
	ErrCredentialDenied = errors.New("auth: credential check denied")
)

// CredentialVerifier is the opaque platform biometric check. The protocol
// itself lives outside this system; only the outcome branch matters here.
type CredentialVerifier interface {
	// Register runs the credential creation ceremony.
	Register(ctx context.Context) error

	// Verify runs the credential assertion ceremony. Returns nil on
	// success, or one of the sentinel errors above.
	Verify(ctx context.Context) error
}

// UnsupportedVerifier is the default verifier on hosts without a platform
// authenticator.
type UnsupportedVerifier struct{}

// Register implements CredentialVerifier.
func (UnsupportedVerifier) Register(context.Context) error { return ErrCredentialUnsupported }

// Verify implements CredentialVerifier.
func (UnsupportedVerifier) Verify(context.Context) error { return ErrCredentialUnsupported }
