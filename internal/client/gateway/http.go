package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ourganize/ourganize-cli/internal/common"
	"github.com/ourganize/ourganize-cli/internal/logging"
)

// HTTPClient implements Client over a plain GraphQL HTTP endpoint.
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
	credentials CredentialSource
	log         logging.Logger
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors"`
}

// NewHTTPClient builds a gateway talking to endpointURL. credentials may
// return "" while no session exists; such requests go out unauthenticated.
func NewHTTPClient(endpointURL string, credentials CredentialSource, timeout time.Duration, log logging.Logger) *HTTPClient {
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 15 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        20,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
	return &HTTPClient{
		endpointURL: endpointURL,
		httpClient:  httpClient,
		credentials: credentials,
		log:         log,
	}
}

// Query sends a GraphQL query document.
func (c *HTTPClient) Query(ctx context.Context, doc string, vars map[string]any, out any) error {
	return c.do(ctx, doc, vars, out)
}

// Mutate sends a GraphQL mutation document.
func (c *HTTPClient) Mutate(ctx context.Context, doc string, vars map[string]any, out any) error {
	return c.do(ctx, doc, vars, out)
}

func (c *HTTPClient) do(ctx context.Context, doc string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: doc, Variables: vars})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token := c.credentials(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api request failed", "request_id", requestID, "error", err)
		return fmt.Errorf("request failed: %w: %s", common.ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w: %s", common.ErrUnavailable, err.Error())
	}

	var gr graphqlResponse
	if jsonErr := json.Unmarshal(payload, &gr); jsonErr != nil {
		// Proxies and load balancers answer outages with non-JSON bodies.
		if resp.StatusCode != http.StatusOK {
			return classify(resp.StatusCode, nil)
		}
		return fmt.Errorf("failed to decode response: %w", jsonErr)
	}

	if len(gr.Errors) > 0 || resp.StatusCode != http.StatusOK {
		err := classify(resp.StatusCode, gr.Errors)
		c.log.Debug(ctx, "api returned errors", "request_id", requestID, "status", resp.StatusCode, "error", err)
		return err
	}

	if out != nil && len(gr.Data) > 0 {
		if err := json.Unmarshal(gr.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
