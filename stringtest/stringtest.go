// Package stringtest builds multi-line strings for tests.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings, for inputs written
// on Windows.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// Input dedents a raw string literal written inline in a test.
//
// One leading and one trailing newline are removed, whitespace-only lines
// become empty, and the longest run of leading tabs and spaces shared by
// every other line is stripped.
//
// Example:
//
//	src := stringtest.Input(`
//		/**
//		 * Adds two numbers.
//		 */`) // -> "/**\n * Adds two numbers.\n */"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	prefix := commonIndent(lines)

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

func commonIndent(lines []string) string {
	var (
		prefix string
		found  bool
	)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix = indent
			found = true

			continue
		}

		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	return prefix
}
