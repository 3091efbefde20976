package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Maria Silva", "Maria Silva"},
		{"trims whitespace", "  alice  ", "alice"},
		{"removes markup", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"removes quotes and semicolons", `a';DROP TABLE clients;--`, "aDROP TABLE clients--"},
		{"removes ampersand", "tom & jerry", "tom  jerry"},
		{"inner whitespace kept", "rua das flores, 10", "rua das flores, 10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clean(tc.in))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  padded  ",
		`<a href="x">link</a>`,
		"&amp;lt;",
		`mix'; "of" <every>thing&`,
		"\t tabs and \n newlines \n",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean not idempotent for %q", in)
	}
}
