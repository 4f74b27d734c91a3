package transport

import (
	"bufio"
	"io"
	"net/textproto"
	"strings"

	"github.com/Zkmey/go-webserver/internal/model"
)

// ReadRequest consumes one request's header block from r: every line up
// to the first empty line or the end of the stream. The first GET line
// carrying a request-target decides the served path; every other line
// is read and discarded. trace, when non-nil, receives each line as it
// is consumed.
//
// Read failures, including a stream that ends before the blank line,
// stop the loop; whatever was captured so far is returned along with
// the error. Malformed input is never an error on its own: a request
// with no usable GET line simply has an empty Path.
func ReadRequest(r io.Reader, trace func(line string)) (*model.Request, error) {
	tp := textproto.NewReader(bufio.NewReader(r))
	req := &model.Request{}
	captured := false
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return req, err
		}
		if trace != nil {
			trace(line)
		}
		if line == "" {
			return req, nil
		}
		if !captured && strings.HasPrefix(line, "GET") {
			if path, ok := targetPath(line); ok {
				req.Path = path
				captured = true
			}
		}
	}
}

// targetPath extracts the served path from a GET request line: the
// second whitespace-separated field, minus a trailing all-digit :port.
// A bare "/" maps to the empty path, which selects the built-in
// greeting.
func targetPath(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", false
	}
	target := fields[1]
	if i := strings.LastIndexByte(target, ':'); i != -1 && isPort(target[i+1:]) {
		target = target[:i]
	}
	if target == "/" {
		return "", true
	}
	return target, true
}

func isPort(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
