// Package kernel contains shared value objects used across the domain
// model. It currently provides UUID, a wrapper over github.com/google/uuid
// used for identities minted by the authentication provider.
//
// Entities owned by this application use database-generated int64 surrogate
// keys; kernel.UUID appears only where an external system defines the
// identifier format.
package kernel
