package transport

import (
	"bufio"
	"io"
	"net/http"
	"time"

	"github.com/Zkmey/go-webserver/internal/model"
	"github.com/Zkmey/go-webserver/internal/transport/tokens"
)

// Identity strings baked into every response.
const (
	// ServerName goes out in the Server header.
	ServerName = "Zack's server"
	// ServerIdentity replaces the server tag in served pages.
	ServerIdentity = "Zackery Meyer's CS371 Server"
)

const contentType = "text/html"

const (
	statusFound    = "HTTP/1.1 200 OK\n"
	statusNotFound = "HTTP/1.1 404 Not Found\n"
)

const (
	greetingPage = "<html><head></head><body>\n<h3>My web server works!</h3>\n</body></html>\n"
	notFoundPage = "<html><head></head><body>\n<h3>ERROR! CODE: 404 NOT FOUND</h3>\n</body></html>\n"
)

// WriteHeader writes the status line and headers for status to w,
// terminated by a blank line, e.g.:
//
//	HTTP/1.1 200 OK
//	Date: Tue, 02 Jan 2024 15:04:05 GMT
//	Server: Zack's server
//	Connection: close
//	Content-Type: text/html
//
// Only write errors are returned.
func WriteHeader(w io.Writer, status model.Status, date time.Time) error {
	header := bufio.NewWriter(w)
	if status == model.Found {
		header.WriteString(statusFound)
	} else {
		header.WriteString(statusNotFound)
	}
	header.WriteString("Date: ")
	header.WriteString(date.UTC().Format(http.TimeFormat))
	header.WriteString("\nServer: ")
	header.WriteString(ServerName)
	header.WriteString("\nConnection: close\nContent-Type: ")
	header.WriteString(contentType)
	if _, err := header.WriteString("\n\n"); err != nil {
		return err
	}
	return header.Flush()
}

// WriteBody writes the body selected by resp to w. The date tag is
// rendered here, at write time, so its value can trail the Date header
// by a moment. A found response backed by a file outside .html gets no
// body at all: the 200 header stands alone.
func WriteBody(w io.Writer, resp *model.Response, date time.Time) error {
	switch {
	case resp.Status != model.Found:
		_, err := io.WriteString(w, notFoundPage)
		return err
	case resp.Body == nil:
		_, err := io.WriteString(w, greetingPage)
		return err
	case resp.HTML():
		page := tokens.NewReader(resp.Body,
			tokens.Date, date.Format(time.UnixDate),
			tokens.Server, ServerIdentity,
		)
		_, err := io.Copy(w, page)
		return err
	}
	return nil
}
