// Package identity adapts the external identity provider. Accounts are
// provisioned and authenticated elsewhere; this service only needs to turn
// a bearer token into an account identifier.
package identity

import "context"

// Verifier resolves a bearer token to an external account id. An unknown or
// expired token returns ok=false with a nil error; errors are reserved for
// provider failures.
type Verifier interface {
	Verify(ctx context.Context, token string) (accountID string, ok bool, err error)
}
