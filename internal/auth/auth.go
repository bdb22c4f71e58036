// Package auth verifies caller identity with HMAC-signed bearer
// credentials. Transport middleware places the raw credential into the
// request context; services check it against the account an operation
// requires.
package auth

import (
	"context"
	"errors"

	"github.com/lumendao/treasury-backend/internal/model"
)

// Failure kinds. Transport maps these to HTTP statuses.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrExpiredCredential = errors.New("expired credential")
	ErrWrongAccount      = errors.New("credential issued for a different account")
)

type contextKey struct{}

// WithCredential attaches a raw bearer credential to the context.
func WithCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, contextKey{}, credential)
}

// CredentialFromContext returns the raw credential stored by middleware.
func CredentialFromContext(ctx context.Context) (string, bool) {
	credential, ok := ctx.Value(contextKey{}).(string)
	return credential, ok && credential != ""
}

// Authorizer verifies that a context carries a capability for an account.
type Authorizer interface {
	Require(ctx context.Context, account model.Account) error
}
