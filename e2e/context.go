// Package e2e drives a running foresight server through godog scenarios.
package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TestContext holds the HTTP client and the last response of a scenario.
type TestContext struct {
	BaseURL string
	client  *http.Client

	status int
	header http.Header
	body   []byte
}

// NewTestContext targets the server at baseURL.
func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset forgets the previous response.
func (tc *TestContext) Reset() {
	tc.status = 0
	tc.header = nil
	tc.body = nil
}

// GET issues a request and records the response.
func (tc *TestContext) GET(path string, headers map[string]string) error {
	req, err := http.NewRequest(http.MethodGet, tc.BaseURL+path, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	tc.status = resp.StatusCode
	tc.header = resp.Header
	tc.body = body
	return nil
}

func (tc *TestContext) StatusCode() int {
	return tc.status
}

func (tc *TestContext) Header(name string) string {
	return tc.header.Get(name)
}

func (tc *TestContext) Body() []byte {
	return tc.body
}

// DecodeResponse unmarshals the last JSON body into v.
func (tc *TestContext) DecodeResponse(v any) error {
	if err := json.Unmarshal(tc.body, v); err != nil {
		return fmt.Errorf("decode response: %w (body: %s)", err, tc.body)
	}
	return nil
}

// GetResponseField returns a top-level JSON field of the last response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var m map[string]any
	if err := tc.DecodeResponse(&m); err != nil {
		return nil, err
	}
	v, ok := m[field]
	if !ok {
		return nil, fmt.Errorf("field %q not in response", field)
	}
	return v, nil
}
