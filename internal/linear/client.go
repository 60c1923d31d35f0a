package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.linear.app/graphql"

const defaultTimeout = 30 * time.Second

// Client is a minimal GraphQL client for the Linear API. Queries and
// mutations are static strings; variables carry all dynamic values.
type Client struct {
	Endpoint   string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a client with the given API token.
func NewClient(token string) *Client {
	return &Client{
		Endpoint:   defaultEndpoint,
		Token:      token,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

type graphQLRequest struct {
	Query     string `json:"query"`
	Variables any    `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// RateLimitError represents a Linear rate limit response.
type RateLimitError struct {
	Status int
	Reset  time.Time
}

func (e *RateLimitError) Error() string {
	if !e.Reset.IsZero() {
		return fmt.Sprintf("linear: rate limited (status %d), reset at %s", e.Status, e.Reset.Format(time.RFC3339))
	}
	return fmt.Sprintf("linear: rate limited (status %d)", e.Status)
}

func parseRateLimitReset(resp *http.Response) time.Time {
	reset := resp.Header.Get("X-RateLimit-Reset")
	if reset == "" {
		return time.Time{}
	}
	// Linear returns epoch seconds.
	if sec, err := strconv.ParseInt(reset, 10, 64); err == nil {
		return time.Unix(sec, 0)
	}
	return time.Time{}
}

// Do executes a GraphQL request and unmarshals the data payload into out.
// A non-2xx status or a non-empty errors array is a terminal failure; there
// is no retry anywhere in this client.
func (c *Client) Do(ctx context.Context, query string, variables any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("linear: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("linear: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", authHeader(c.Token))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("linear: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("linear: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusTooManyRequests {
			return &RateLimitError{Status: resp.StatusCode, Reset: parseRateLimitReset(resp)}
		}
		return fmt.Errorf("linear: status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return fmt.Errorf("linear: decode response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("linear: %s", gqlResp.Errors[0].Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("linear: decode data: %w", err)
	}
	return nil
}

// authHeader builds the Authorization value. Personal API keys are sent
// bare; OAuth access tokens (lin_oauth_ prefix) need the Bearer scheme.
func authHeader(token string) string {
	if strings.HasPrefix(token, "lin_oauth_") {
		return "Bearer " + token
	}
	return token
}
