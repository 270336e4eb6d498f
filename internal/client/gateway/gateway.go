// Package gateway is the single point of outbound API communication: a
// GraphQL-over-HTTP façade that attaches the session credential, sends named
// queries and mutations, and normalizes the structured error list into flat
// messages classified by sentinel errors.
package gateway

import (
	"context"
	"encoding/json"
)

// Client sends GraphQL documents to the API. Query and Mutate share one
// transport; they exist separately to keep call sites honest about intent.
// On success the response's data object is unmarshalled into out (which may
// be nil when the caller ignores the payload).
type Client interface {
	Query(ctx context.Context, doc string, vars map[string]any, out any) error
	Mutate(ctx context.Context, doc string, vars map[string]any, out any) error
}

// CredentialSource supplies the bearer token for outgoing requests. An empty
// return means the request is sent unauthenticated.
type CredentialSource func() string

// ResponseError is one entry of a GraphQL error list.
type ResponseError struct {
	Message    string          `json:"message"`
	Extensions ErrorExtensions `json:"extensions"`
}

// ErrorExtensions carries the structured error classification. Validation
// maps field names to one message or a list of messages; values are kept raw
// because servers emit both forms.
type ErrorExtensions struct {
	Category   string                     `json:"category"`
	Validation map[string]json.RawMessage `json:"validation"`
}
