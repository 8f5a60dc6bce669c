package engine

import (
	"log"

	"github.com/valyala/fasthttp"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
)

// NewFastHTTP returns the fasthttp form of the fixture contract.
func NewFastHTTP(logger *log.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		method := string(ctx.Method())
		path := string(ctx.Path())

		resp := fixture.Handle(method, path, ctx.PostBody())
		ctx.SetStatusCode(resp.Status)
		ctx.Response.Header.SetContentType(resp.ContentType)
		ctx.Response.Header.SetContentLength(len(resp.Body))
		ctx.SetBody(resp.Body)

		proto := string(ctx.Request.Header.Protocol())
		logger.Print(fixture.AccessLine(ctx.RemoteAddr().String(), method, path, proto, resp.Status))
	}
}
