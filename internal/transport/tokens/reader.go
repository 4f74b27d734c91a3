package tokens

import (
	"bufio"
	"io"
	"strings"
)

// Tags looked up in served pages.
const (
	Date   = "<cs371date>"
	Server = "<cs371server>"
)

// NewReader returns a reader that yields r's text line by line, with each
// line's terminator (LF or CRLF) removed and each oldnew pair substituted
// in the manner of [strings.NewReplacer]. Nothing is re-inserted between
// lines, so the output is the transformed lines run together.
func NewReader(r io.Reader, oldnew ...string) io.Reader {
	var br *bufio.Reader
	if v, ok := r.(*bufio.Reader); ok {
		br = v
	} else {
		br = bufio.NewReader(r)
	}
	return &lineReader{br: br, rep: strings.NewReplacer(oldnew...)}
}

type lineReader struct {
	br   *bufio.Reader
	rep  *strings.Replacer
	line []byte // transformed bytes not yet delivered
	err  error  // sticky, reported once line is drained
}

func (l *lineReader) Read(p []byte) (n int, err error) {
	for len(l.line) == 0 {
		if l.err != nil {
			return 0, l.err
		}
		line, err := l.br.ReadString('\n')
		l.err = err
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		l.line = []byte(l.rep.Replace(line))
	}
	n = copy(p, l.line)
	l.line = l.line[n:]
	return n, nil
}
