package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/ourganize/ourganize-cli/internal/common"
)

// unauthenticatedMarker is the message fragment the API uses for rejected
// credentials. Matched case-insensitively.
const unauthenticatedMarker = "unauthenticated"

// authCategory is the extensions.category value tagging authentication
// failures.
const authCategory = "authentication"

// normalizeErrors reduces a GraphQL error list to one human-readable message.
// Validation extension maps are flattened: every field's messages are joined,
// fields in name order so the result is deterministic. Errors without a
// validation map contribute their message as-is.
func normalizeErrors(errs []ResponseError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if len(e.Extensions.Validation) > 0 {
			parts = append(parts, flattenValidation(e.Extensions.Validation))
			continue
		}
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, " ")
}

func flattenValidation(fields map[string]json.RawMessage) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var messages []string
	for _, name := range names {
		raw := fields[name]

		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			messages = append(messages, list...)
			continue
		}

		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			messages = append(messages, single)
			continue
		}

		messages = append(messages, string(raw))
	}
	return strings.Join(messages, " ")
}

// hasValidation reports whether any error carries a validation map.
func hasValidation(errs []ResponseError) bool {
	for _, e := range errs {
		if len(e.Extensions.Validation) > 0 {
			return true
		}
	}
	return false
}

// isAuthFailure reports whether the error list or transport status marks the
// credential itself as invalid, as opposed to a transient failure.
func isAuthFailure(status int, errs []ResponseError) bool {
	if status == http.StatusUnauthorized {
		return true
	}
	for _, e := range errs {
		if strings.Contains(strings.ToLower(e.Message), unauthenticatedMarker) {
			return true
		}
		if strings.EqualFold(e.Extensions.Category, authCategory) {
			return true
		}
	}
	return false
}

// classify converts a GraphQL error list plus transport status into a single
// error wrapping the matching sentinel, so callers can branch with errors.Is.
func classify(status int, errs []ResponseError) error {
	msg := normalizeErrors(errs)
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case isAuthFailure(status, errs):
		return fmt.Errorf("%s: %w", msg, common.ErrUnauthorized)
	case hasValidation(errs):
		return fmt.Errorf("%s: %w", msg, common.ErrValidation)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", msg, common.ErrUnavailable)
	default:
		return fmt.Errorf("request failed: %s", msg)
	}
}
