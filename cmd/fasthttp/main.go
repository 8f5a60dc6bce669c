// The fasthttp engine of the KPIO E2E fixture server. Same wire contract
// as cmd/std, kept for load-heavy E2E runs.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/valyala/fasthttp"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/engine"
	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
)

func main() {
	port := flag.Int("port", fixture.DefaultPort, "listen port")
	flag.Parse()

	logger := log.New(os.Stdout, fixture.LogPrefix, log.LstdFlags)

	srv := &fasthttp.Server{
		Handler:               engine.NewFastHTTP(logger),
		Name:                  "fixture",
		NoDefaultServerHeader: true,
		NoDefaultDate:         true,
		NoDefaultContentType:  true,
	}

	logger.Printf("listening on 0.0.0.0:%d", *port)
	logger.Printf("reachable from the guest at %s", fixture.GuestURL(*port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(fixture.ListenAddr(*port))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatalf("could not listen: %v", err)
	case sig := <-sigCh:
		logger.Printf("received %s, shutting down", sig)
	}

	if err := srv.Shutdown(); err != nil {
		logger.Printf("shutdown: %v", err)
	}
	logger.Print("server stopped")
}
