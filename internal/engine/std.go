// Package engine binds the fixture contract to the serving engines. All
// three adapters produce the same bytes on the wire; std is the reference.
package engine

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
)

// NewSTD returns the net/http form of the fixture contract.
func NewSTD(logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			b, err := io.ReadAll(r.Body)
			if err != nil {
				// Body shorter than Content-Length: the transport
				// already killed the connection, nothing to write.
				logger.Printf("%s body read failed: %v", r.RemoteAddr, err)
				return
			}
			body = b
		}

		resp := fixture.Handle(r.Method, r.URL.Path, body)
		w.Header().Set("Content-Type", resp.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
		w.WriteHeader(resp.Status)
		_, _ = w.Write(resp.Body)

		logger.Print(fixture.AccessLine(r.RemoteAddr, r.Method, r.URL.Path, r.Proto, resp.Status))
	})
}
