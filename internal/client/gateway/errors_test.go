package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourganize/ourganize-cli/internal/common"
)

func validation(fields map[string]any) ErrorExtensions {
	raw := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		b, _ := json.Marshal(v)
		raw[k] = b
	}
	return ErrorExtensions{Validation: raw}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		errs []ResponseError
		want string
	}{
		{
			name: "plain message",
			errs: []ResponseError{{Message: "Something broke"}},
			want: "Something broke",
		},
		{
			name: "validation lists flattened in field order",
			errs: []ResponseError{{
				Message: "validation failed",
				Extensions: validation(map[string]any{
					"email": []string{"The email has already been taken."},
					"name":  []string{"The name field is required."},
				}),
			}},
			want: "The email has already been taken. The name field is required.",
		},
		{
			name: "validation with scalar value",
			errs: []ResponseError{{
				Extensions: validation(map[string]any{
					"password": "The password must be at least 8 characters.",
				}),
			}},
			want: "The password must be at least 8 characters.",
		},
		{
			name: "multiple errors joined",
			errs: []ResponseError{
				{Message: "first"},
				{Message: "second"},
			},
			want: "first second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeErrors(tt.errs))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("unauthenticated message marker", func(t *testing.T) {
		err := classify(200, []ResponseError{{Message: "Unauthenticated."}})
		require.ErrorIs(t, err, common.ErrUnauthorized)
		assert.Contains(t, err.Error(), "Unauthenticated.")
	})

	t.Run("authentication category", func(t *testing.T) {
		err := classify(200, []ResponseError{{
			Message:    "token revoked",
			Extensions: ErrorExtensions{Category: "authentication"},
		}})
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("transport 401", func(t *testing.T) {
		err := classify(401, nil)
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("validation", func(t *testing.T) {
		err := classify(200, []ResponseError{{
			Extensions: validation(map[string]any{"email": []string{"invalid"}}),
		}})
		require.ErrorIs(t, err, common.ErrValidation)
		require.NotErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("server error", func(t *testing.T) {
		err := classify(503, nil)
		require.ErrorIs(t, err, common.ErrUnavailable)
	})

	t.Run("generic stays unclassified", func(t *testing.T) {
		err := classify(200, []ResponseError{{Message: "record not owned"}})
		require.Error(t, err)
		require.NotErrorIs(t, err, common.ErrUnauthorized)
		require.NotErrorIs(t, err, common.ErrValidation)
		require.NotErrorIs(t, err, common.ErrUnavailable)
	})
}
