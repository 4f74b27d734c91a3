package internal

import (
	"context"
	"net"
)

// Listen opens a TCP listener on addr with the address marked reusable
// where the platform supports it, so a restarted server can rebind
// while sockets from the previous run linger in TIME_WAIT.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	cfg := net.ListenConfig{Control: controlListener}
	return cfg.Listen(ctx, "tcp", addr)
}
