package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourganize/ourganize-cli/internal/common"
	"github.com/ourganize/ourganize-cli/internal/logging"
)

func staticToken(token string) CredentialSource {
	return func() string { return token }
}

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, staticToken(token), 5*time.Second, logging.NewDefault(slog.LevelError))
}

func TestQuery_DecodesData(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req["query"], "GetProfessions")

		_, _ = w.Write([]byte(`{"data":{"professions":[{"id":"1","name":"Engineer"}]}}`))
	})

	var out struct {
		Professions []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"professions"`
	}
	err := c.Query(context.Background(), `query GetProfessions { professions { id name } }`, nil, &out)
	require.NoError(t, err)
	require.Len(t, out.Professions, 1)
	assert.Equal(t, "Engineer", out.Professions[0].Name)
}

func TestDo_AttachesBearerOnlyWhenPresent(t *testing.T) {
	var got string
	handler := func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}

	c := newTestClient(t, "T1", handler)
	require.NoError(t, c.Query(context.Background(), `query Me { me { id } }`, nil, nil))
	assert.Equal(t, "Bearer T1", got)

	c = newTestClient(t, "", handler)
	require.NoError(t, c.Query(context.Background(), `query Me { me { id } }`, nil, nil))
	assert.Empty(t, got)
}

func TestDo_VariablesArePassedThrough(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Variables["email"])
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	err := c.Mutate(context.Background(), `mutation Login($email: String!) { login(email: $email) { access_token } }`,
		map[string]any{"email": "a@b.com"}, nil)
	require.NoError(t, err)
}

func TestDo_GraphQLErrorsAreClassified(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		c := newTestClient(t, "stale", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"Unauthenticated."}]}`))
		})
		err := c.Query(context.Background(), `query Me { me { id } }`, nil, nil)
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("validation map flattened", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"validation",` +
				`"extensions":{"validation":{"email":["The email has already been taken."]}}}]}`))
		})
		err := c.Mutate(context.Background(), `mutation Register { register { id } }`, nil, nil)
		require.ErrorIs(t, err, common.ErrValidation)
		assert.Contains(t, err.Error(), "The email has already been taken.")
	})

	t.Run("http 401 without body", func(t *testing.T) {
		c := newTestClient(t, "stale", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
		err := c.Query(context.Background(), `query Me { me { id } }`, nil, nil)
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("http 500", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		err := c.Query(context.Background(), `query Me { me { id } }`, nil, nil)
		require.ErrorIs(t, err, common.ErrUnavailable)
	})
}

func TestDo_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewHTTPClient(srv.URL, staticToken(""), time.Second, logging.NewDefault(slog.LevelError))
	err := c.Query(context.Background(), `query Me { me { id } }`, nil, nil)
	require.ErrorIs(t, err, common.ErrUnavailable)
}
