// Package cli provides the interactive Ourganize command-line client.
//
// It wires configuration, the local cache, the GraphQL gateway, the session
// and the entity collections into an interactive REPL. Typical flow: restore
// the persisted identity, resolve it against the API, then execute user
// commands against the locally cached collections.
//
// Key features:
//   - Login / Register / Logout (logout always clears local data)
//   - Profile view and update, email verification helpers
//   - List / add / edit / delete for the cached entity collections
//   - Feature-module toggling
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
