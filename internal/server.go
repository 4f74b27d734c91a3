package internal

import (
	"net"

	"golang.org/x/net/netutil"
)

// Server accepts connections and hands each one to its own Worker.
// Workers share nothing, so the zero value is ready to serve.
type Server struct {
	// Log, when set, replaces DefaultLogger for every worker.
	Log Logger
	// MaxClients caps the connections served at once; zero or less
	// means no cap. Excess connections wait in the listen backlog.
	MaxClients int
}

// Serve accepts connections on l until Accept fails, typically because
// the listener was closed, and returns the accept error. Each accepted
// connection is answered concurrently.
func (s *Server) Serve(l net.Listener) error {
	if s.MaxClients > 0 {
		l = netutil.LimitListener(l, s.MaxClients)
	}
	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		go Worker{Conn: conn, Log: s.Log}.Handle()
	}
}
