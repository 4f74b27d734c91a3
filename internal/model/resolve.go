package model

import "io"

// Resolve decides how the request will be answered. A request with no
// path is always Found and never touches the filesystem. Anything else
// is classified by a single open call, and the same handle later feeds
// the body write. Open failures of any kind (missing, unreadable, a
// directory) become NotFound.
func (r *Request) Resolve(open func(name string) (io.ReadCloser, error)) *Response {
	if r.Default() {
		return &Response{Status: Found}
	}
	body, err := open(r.Path)
	if err != nil {
		return &Response{Status: NotFound, Path: r.Path}
	}
	return &Response{Status: Found, Path: r.Path, Body: body}
}
