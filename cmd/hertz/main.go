// The hertz engine of the KPIO E2E fixture server. Same wire contract as
// cmd/std. Spin handles SIGINT/SIGTERM and closes the listener itself.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/engine"
	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
)

func main() {
	port := flag.Int("port", fixture.DefaultPort, "listen port")
	flag.Parse()

	logger := log.New(os.Stdout, fixture.LogPrefix, log.LstdFlags)

	h := server.New(server.WithHostPorts(fmt.Sprintf("0.0.0.0:%d", *port)))
	engine.RegisterHertz(h.Engine, logger)

	logger.Printf("listening on 0.0.0.0:%d", *port)
	logger.Printf("reachable from the guest at %s", fixture.GuestURL(*port))

	h.Spin()
	logger.Print("server stopped")
}
