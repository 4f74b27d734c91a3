package webserver

import (
	"context"
	"net"

	"github.com/Zkmey/go-webserver/internal"
	"github.com/Zkmey/go-webserver/internal/model"
)

type Server = internal.Server
type Worker = internal.Worker
type Logger = internal.Logger

type Request = model.Request
type Response = model.Response
type Status = model.Status

const (
	Found    = model.Found
	NotFound = model.NotFound
)

// Listen opens a TCP listener suited to [Server.Serve], with the
// listening address marked reusable across restarts.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	return internal.Listen(ctx, addr)
}
