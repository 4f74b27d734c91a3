package model

import (
	"io"
	"strings"
)

// Status selects the status line and the body family of a response.
type Status int

const (
	Found    Status = iota // 200: canned greeting or file-backed body
	NotFound               // 404: fixed error page
)

// Request is the parse result of one inbound header block. Path is the
// request-target with any trailing :port removed; empty means no file
// was named and the built-in greeting is served.
type Request struct {
	Path string
}

func (r *Request) Default() bool { return r.Path == "" }

// Response describes how one request will be answered.
type Response struct {
	Status Status
	Path   string
	Body   io.ReadCloser // backing file for found non-default paths, nil otherwise
}

// HTML reports whether the backing file is served with tag substitution.
func (r *Response) HTML() bool { return strings.HasSuffix(r.Path, ".html") }

// Close releases the backing file, if any.
func (r *Response) Close() error {
	if r.Body == nil {
		return nil
	}
	return r.Body.Close()
}
