package internal

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/Zkmey/go-webserver/internal/transport"
)

// Worker answers exactly one request on one connection. Every field
// except Conn may be left zero; Handle fills in the defaults.
type Worker struct {
	Conn io.ReadWriteCloser

	Log  Logger
	Now  func() time.Time
	Open func(name string) (io.ReadCloser, error)
}

// Handle reads one request from the connection, writes one response,
// and closes the connection. Request problems are absorbed into the
// response status; write problems are logged and abandon the exchange.
func (w Worker) Handle() {
	defer w.Conn.Close()
	log, now, open := w.Log, w.Now, w.Open
	if log == nil {
		log = DefaultLogger
	}
	if now == nil {
		now = time.Now
	}
	if open == nil {
		open = OpenFile
	}

	log.Infof("handling connection")
	defer log.Infof("done handling connection")

	req, err := transport.ReadRequest(w.Conn, func(line string) {
		log.Infof("request line: (%s)", line)
	})
	if err != nil {
		log.Errorf("request error: %v", err)
	}
	resp := req.Resolve(open)
	defer resp.Close()

	if err := transport.WriteHeader(w.Conn, resp.Status, now()); err != nil {
		log.Errorf("output error: %v", err)
		return
	}
	if err := transport.WriteBody(w.Conn, resp, now()); err != nil {
		log.Errorf("output error: %v", err)
	}
}

var errIsDir = errors.New("is a directory")

// OpenFile is the default file source: the name is opened as is, with
// no rooting or cleaning, and directories are refused so they fall
// through to the not-found page.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, &os.PathError{Op: "open", Path: name, Err: errIsDir}
	}
	return f, nil
}
