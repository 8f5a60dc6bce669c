package engine

import (
	"context"
	"log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route"

	"github.com/kpio-os/kpio/tests/e2e/fixture_server/internal/fixture"
)

// RegisterHertz installs the fixture contract on a hertz engine. Method
// mismatches on known paths fall through to NoRoute, matching the other
// engines' single not-found behavior.
func RegisterHertz(e *route.Engine, logger *log.Logger) {
	e.Use(func(c context.Context, ctx *app.RequestContext) {
		ctx.Next(c)
		logger.Print(fixture.AccessLine(
			ctx.RemoteAddr().String(),
			string(ctx.Method()),
			string(ctx.Path()),
			"HTTP/1.1",
			ctx.Response.StatusCode(),
		))
	})

	dispatch := func(_ context.Context, ctx *app.RequestContext) {
		writeHertz(ctx, fixture.Handle(string(ctx.Method()), string(ctx.Path()), ctx.Request.Body()))
	}
	e.GET("/test", dispatch)
	e.GET("/health", dispatch)
	e.POST("/echo", dispatch)
	e.NoRoute(func(_ context.Context, ctx *app.RequestContext) {
		writeHertz(ctx, fixture.NotFound())
	})
}

func writeHertz(ctx *app.RequestContext, resp fixture.Response) {
	ctx.SetStatusCode(resp.Status)
	ctx.Response.Header.SetContentType(resp.ContentType)
	ctx.Response.Header.SetContentLength(len(resp.Body))
	ctx.Response.SetBody(resp.Body)
}
