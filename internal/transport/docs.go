// package transport implements the wire format for one-shot exchanges:
// a request header block consumed line by line up to its terminating
// blank line, answered by a fixed header block and an HTML body.
//
// the header lines written here end with a bare LF where RFC 9112
// prescribes CRLF. clients in practice accept the relaxed framing, and
// the exact bytes are pinned by tests, so the dialect is kept as is.
package transport
