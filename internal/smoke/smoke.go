// Package smoke verifies a running fixture server from the client side.
// It is what the guest runs to prove guest-to-host network I/O works
// before the real E2E suite starts.
package smoke

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
)

// echoProbe is an arbitrary binary payload; the fixture must return it
// verbatim.
var echoProbe = []byte("kpio-smoke\x00\x01\xfe\xff")

// Run probes every fixture route on baseURL and reports all mismatches at
// once, not just the first.
func Run(client *http.Client, baseURL string) error {
	var result *multierror.Error
	result = multierror.Append(result, checkStatus(client, baseURL))
	result = multierror.Append(result, checkHealth(client, baseURL))
	result = multierror.Append(result, checkEcho(client, baseURL, echoProbe))
	result = multierror.Append(result, checkEcho(client, baseURL, nil))
	result = multierror.Append(result, checkNotFound(client, baseURL))
	return result.ErrorOrNil()
}

func checkStatus(client *http.Client, baseURL string) error {
	status, contentType, body, err := get(client, baseURL+"/test")
	if err != nil {
		return fmt.Errorf("GET /test: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("GET /test: status %d, want 200", status)
	}
	if contentType != "application/json" {
		return fmt.Errorf("GET /test: content type %q, want application/json", contentType)
	}
	if !bytes.Equal(body, fixture.StatusBody) {
		return fmt.Errorf("GET /test: body %q, want %q", body, fixture.StatusBody)
	}
	return nil
}

func checkHealth(client *http.Client, baseURL string) error {
	status, contentType, body, err := get(client, baseURL+"/health")
	if err != nil {
		return fmt.Errorf("GET /health: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("GET /health: status %d, want 200", status)
	}
	if contentType != "text/plain" {
		return fmt.Errorf("GET /health: content type %q, want text/plain", contentType)
	}
	if !bytes.Equal(body, fixture.HealthBody) {
		return fmt.Errorf("GET /health: body %q, want %q", body, fixture.HealthBody)
	}
	return nil
}

func checkEcho(client *http.Client, baseURL string, payload []byte) error {
	resp, err := client.Post(baseURL+"/echo", "application/octet-stream", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("POST /echo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("POST /echo: reading body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST /echo: status %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Length"); got != strconv.Itoa(len(payload)) {
		return fmt.Errorf("POST /echo: Content-Length %q, want %d", got, len(payload))
	}
	if !bytes.Equal(body, payload) {
		return fmt.Errorf("POST /echo: body %q, want %q", body, payload)
	}
	return nil
}

func checkNotFound(client *http.Client, baseURL string) error {
	status, _, _, err := get(client, baseURL+"/smoke-does-not-exist")
	if err != nil {
		return fmt.Errorf("GET /smoke-does-not-exist: %w", err)
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("GET /smoke-does-not-exist: status %d, want 404", status)
	}
	return nil
}

func get(client *http.Client, url string) (status int, contentType string, body []byte, err error) {
	resp, err := client.Get(url)
	if err != nil {
		return 0, "", nil, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", nil, fmt.Errorf("reading body: %w", err)
	}
	return resp.StatusCode, resp.Header.Get("Content-Type"), body, nil
}
