// Package migrations registers the schema migrations. Import it for side
// effects from the binary entrypoint; the registry runs in registration
// order.
package migrations
