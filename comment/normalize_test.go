package comment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jtwebb/tokenize-comment/comment"
	"github.com/jtwebb/tokenize-comment/stringtest"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"empty": {
			input: "",
			want:  nil,
		},
		"whitespace only": {
			input: " \n\t ",
			want:  nil,
		},
		"no delimiters": {
			input: "foo bar\n@param x",
			want:  nil,
		},
		"single line block": {
			input: "/** @private */",
			want:  []string{" @private "},
		},
		"empty doc block": {
			input: "/**/",
			want:  []string{""},
		},
		"starred closing": {
			input: "/** foo **/",
			want:  []string{" foo "},
		},
		"starred closing on its own line": {
			input: stringtest.JoinLF(
				"/**",
				" * foo",
				" **/",
			),
			want: []string{"", " foo", " "},
		},
		"star run only": {
			input: "/***/",
			want:  []string{""},
		},
		"unterminated block": {
			input: "/** foo",
			want:  []string{" foo"},
		},
		"lines without stars pass through": {
			input: "/* foo\nbar\nbaz\n * \n@param {string} something */",
			want:  []string{" foo", "bar", "baz", " ", "@param {string} something "},
		},
		"star decoration": {
			input: stringtest.Input(`
				/**
				 * foo
				 *
				 *   indented
				 */
			`),
			want: []string{"", " foo", "", "   indented", " "},
		},
		"indentation without stars is kept": {
			input: stringtest.JoinLF(
				"/*",
				"  foo",
				"    bar",
				"*/",
			),
			want: []string{"", "  foo", "    bar", ""},
		},
		"only one star is stripped": {
			input: stringtest.JoinLF(
				"/**",
				" ** bold",
				" */",
			),
			want: []string{"", "* bold", " "},
		},
		"line comments": {
			input: stringtest.JoinLF(
				"// foo",
				"//",
				"/// @param x",
				"\t//   indented",
			),
			want: []string{" foo", "", " @param x", "   indented"},
		},
		"crlf line endings": {
			input: stringtest.JoinCRLF(
				"/**",
				" * foo",
				" * @param x",
				" */",
			),
			want: []string{"", " foo", " @param x", " "},
		},
		"surrounding whitespace is ignored": {
			input: "\n\n    /** foo */\n  ",
			want:  []string{" foo "},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := comment.Normalize(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}
