package engine

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
)

func performFastHTTP(t *testing.T, method, path string, body []byte) *fasthttp.RequestCtx {
	t.Helper()
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	NewFastHTTP(discardLogger())(&ctx)
	return &ctx
}

func TestFastHTTPRoutes(t *testing.T) {
	cases := []struct {
		name            string
		method, path    string
		body            []byte
		wantStatus      int
		wantContentType string
		wantBody        []byte
	}{
		{"status", "GET", "/test", nil, 200, "application/json", fixture.StatusBody},
		{"health", "GET", "/health", nil, 200, "text/plain", fixture.HealthBody},
		{"echo", "POST", "/echo", []byte("hello world"), 200, "application/octet-stream", []byte("hello world")},
		{"unknown path", "GET", "/nope", nil, 404, "text/plain; charset=utf-8", fixture.NotFoundBody},
		{"wrong method", "POST", "/health", nil, 404, "text/plain; charset=utf-8", fixture.NotFoundBody},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := performFastHTTP(t, c.method, c.path, c.body)
			assert.Equal(t, c.wantStatus, ctx.Response.StatusCode())
			assert.Equal(t, c.wantContentType, string(ctx.Response.Header.ContentType()))
			assert.Equal(t, c.wantBody, ctx.Response.Body())
		})
	}
}

// Full serve path over an in-memory listener, checking the bytes a real
// client sees, headers included.
func TestFastHTTPServed(t *testing.T) {
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: NewFastHTTP(discardLogger())}
	go func() { _ = srv.Serve(ln) }()
	defer ln.Close()

	client := &http.Client{
		Transport: &http.Transport{
			DialContext: func(context.Context, string, string) (net.Conn, error) {
				return ln.Dial()
			},
		},
	}

	resp, err := client.Get("http://fixture/test")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, strconv.Itoa(len(fixture.StatusBody)), resp.Header.Get("Content-Length"))
	assert.Equal(t, fixture.StatusBody, body)

	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	resp, err = client.Post("http://fixture/echo", "application/octet-stream", bytes.NewReader(payload))
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "4", resp.Header.Get("Content-Length"))
	assert.Equal(t, payload, body)

	resp, err = client.Get("http://fixture/missing")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, fixture.NotFoundBody, body)
}
