package internal_test

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/Zkmey/go-webserver/internal"
)

// connQueue hands out queued connections until drained, then fails
// Accept the way a closed listener does.
type connQueue struct {
	conns chan net.Conn
}

func (q *connQueue) Accept() (net.Conn, error) {
	c, ok := <-q.conns
	if !ok {
		return nil, net.ErrClosed
	}
	return c, nil
}

func (q *connQueue) Close() error   { return nil }
func (q *connQueue) Addr() net.Addr { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)} }

func serveQueued(t *testing.T, srv *internal.Server, clients int) []string {
	q := &connQueue{conns: make(chan net.Conn, clients)}
	replies := make(chan string, clients)
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		server, client := net.Pipe()
		q.conns <- server
		wg.Add(1)
		go func(c net.Conn) {
			defer wg.Done()
			defer c.Close()
			io.WriteString(c, "GET / HTTP/1.1\r\n\r\n")
			b, _ := io.ReadAll(c)
			replies <- string(b)
		}(client)
	}
	close(q.conns)

	if err := srv.Serve(q); !errors.Is(err, net.ErrClosed) {
		t.Errorf("Serve returned %v, want %v", err, net.ErrClosed)
	}
	wg.Wait()
	close(replies)

	all := make([]string, 0, clients)
	for r := range replies {
		all = append(all, r)
	}
	return all
}

func TestServeAnswersEachConnection(t *testing.T) {
	srv := &internal.Server{Log: &recordLog{}}
	for _, reply := range serveQueued(t, srv, 8) {
		if !strings.HasPrefix(reply, "HTTP/1.1 200 OK\n") {
			t.Errorf("reply %q lacks the status line", reply)
		}
		if !strings.Contains(reply, "My web server works!") {
			t.Errorf("reply %q lacks the greeting", reply)
		}
	}
}

func TestServeHonorsMaxClients(t *testing.T) {
	srv := &internal.Server{Log: &recordLog{}, MaxClients: 1}
	replies := serveQueued(t, srv, 4)
	if len(replies) != 4 {
		t.Fatalf("served %d connections, want 4", len(replies))
	}
	for _, reply := range replies {
		if !strings.Contains(reply, "My web server works!") {
			t.Errorf("reply %q lacks the greeting", reply)
		}
	}
}
