// Package fixture pins the wire contract of the KPIO E2E fixture server.
//
// The contract is deliberately tiny: three fixed routes plus a not-found
// fallthrough. Test clients inside the guest compare bodies byte-for-byte,
// so every payload here is a pinned literal and must never be re-marshaled.
package fixture

import (
	"fmt"
	"net/http"
)

const (
	// DefaultPort is the port the E2E harness expects when none is given.
	DefaultPort = 8080

	// GuestGatewayAddr is where the host appears from inside the guest
	// under QEMU user-mode networking (hostfwd).
	GuestGatewayAddr = "10.0.2.2"

	// LogPrefix tags every fixture-server log line.
	LogPrefix = "[fixture-server] "
)

const (
	contentTypeJSON     = "application/json"
	contentTypeText     = "text/plain"
	contentTypeOctet    = "application/octet-stream"
	contentTypeNotFound = "text/plain; charset=utf-8"
)

// Pinned response payloads. StatusBody keeps its key order because guest
// test clients do literal comparison on the bytes.
var (
	StatusBody   = []byte(`{"status":"ok","message":"KPIO E2E test","version":"9.5"}`)
	HealthBody   = []byte("healthy")
	NotFoundBody = []byte("404 page not found\n")
)

// Response describes everything an engine needs to answer one request.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Handle is the entire routing table. It is a pure function: engines read
// the request body up to Content-Length and pass it in, then write the
// returned response with an explicit Content-Length of len(Body).
func Handle(method, path string, body []byte) Response {
	switch {
	case method == http.MethodGet && path == "/test":
		return Response{Status: http.StatusOK, ContentType: contentTypeJSON, Body: StatusBody}
	case method == http.MethodGet && path == "/health":
		return Response{Status: http.StatusOK, ContentType: contentTypeText, Body: HealthBody}
	case method == http.MethodPost && path == "/echo":
		return Response{Status: http.StatusOK, ContentType: contentTypeOctet, Body: body}
	default:
		return NotFound()
	}
}

// NotFound is the pinned not-found response. Unknown path and unknown
// method are deliberately indistinguishable.
func NotFound() Response {
	return Response{Status: http.StatusNotFound, ContentType: contentTypeNotFound, Body: NotFoundBody}
}

// ListenAddr is the all-interfaces bind address for a port.
func ListenAddr(port int) string {
	return fmt.Sprintf(":%d", port)
}

// GuestURL is the base URL at which the guest reaches this server.
func GuestURL(port int) string {
	return fmt.Sprintf("http://%s:%d", GuestGatewayAddr, port)
}

// AccessLine formats one access-log line: client address, request line,
// response status.
func AccessLine(remoteAddr, method, path, proto string, status int) string {
	return fmt.Sprintf("%s %q %d", remoteAddr, method+" "+path+" "+proto, status)
}
