// The net/http engine of the KPIO E2E fixture server. This is the
// reference engine; cmd/fasthttp and cmd/hertz serve the same contract.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/engine"
	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
)

const shutdownGrace = 5 * time.Second

func main() {
	port := flag.Int("port", fixture.DefaultPort, "listen port")
	flag.Parse()

	logger := log.New(os.Stdout, fixture.LogPrefix, log.LstdFlags)

	srv := &http.Server{
		Addr:    fixture.ListenAddr(*port),
		Handler: engine.NewSTD(logger),
	}

	logger.Printf("listening on 0.0.0.0:%d", *port)
	logger.Printf("reachable from the guest at %s", fixture.GuestURL(*port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("could not listen: %v", err)
		}
	case sig := <-sigCh:
		logger.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
	logger.Print("server stopped")
}
