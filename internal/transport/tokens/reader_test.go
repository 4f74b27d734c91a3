package tokens_test

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/Zkmey/go-webserver/internal/transport/tokens"
)

type tCase struct {
	in   string
	want string
}

var pageShouldBe = map[string]tCase{
	"TagsReplaced": {
		in:   "<p><cs371server></p>\n<p><cs371date></p>\n",
		want: "<p>server name</p><p>today</p>",
	},
	"TerminatorsStripped": {
		in:   "a\r\nb\nc",
		want: "abc",
	},
	"NoFinalNewline": {
		in:   "line one\nline two",
		want: "line oneline two",
	},
	"RepeatedTags": {
		in:   "<cs371server> and <cs371server>\n",
		want: "server name and server name",
	},
	"TagSplitAcrossLinesStaysLiteral": {
		in:   "<cs371\nserver>",
		want: "<cs371server>",
	},
	"Empty": {
		in:   "",
		want: "",
	},
}

func TestPageSubstitution(t *testing.T) {
	for name, cas := range pageShouldBe {
		tCase := cas
		t.Run(name, func(t *testing.T) {
			r := tokens.NewReader(strings.NewReader(tCase.in),
				tokens.Server, "server name",
				tokens.Date, "today",
			)
			if err := iotest.TestReader(r, []byte(tCase.want)); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestPageSubstitutionSlowSource(t *testing.T) {
	src := iotest.OneByteReader(strings.NewReader("<p><cs371server></p>\n"))
	r := tokens.NewReader(src, tokens.Server, "server name")
	if err := iotest.TestReader(r, []byte("<p>server name</p>")); err != nil {
		t.Error(err)
	}
}
