// Guest-side smoke checker for the KPIO E2E fixture server. Probes every
// fixture route and exits nonzero if any response deviates from the
// contract, printing all failures at once.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/smoke"
)

func main() {
	baseURL := flag.String("base-url", fixture.GuestURL(fixture.DefaultPort), "fixture server base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	logger := log.New(os.Stdout, "[fixture-smoke] ", log.LstdFlags)

	client := &http.Client{Timeout: *timeout}
	if err := smoke.Run(client, *baseURL); err != nil {
		logger.Fatalf("smoke checks failed against %s:\n%v", *baseURL, err)
	}
	logger.Printf("all smoke checks passed against %s", *baseURL)
}
