// Package identity resolves opaque bearer credentials into verified subject
// identities. The rest of the application depends only on the Resolver
// interface; the concrete implementation verifies HMAC-signed JWTs issued by
// the configured identity provider.
package identity

import "context"

// Claims is the verified identity extracted from a bearer credential.
// Subject is the stable, externally issued identifier of one authenticated
// human. Name and Email are optional profile claims.
type Claims struct {
	Subject string
	Name    string
	Email   string
}

// Resolver validates an opaque bearer credential and yields the subject's
// verified claims.
type Resolver interface {
	Resolve(ctx context.Context, credential string) (*Claims, error)
}
