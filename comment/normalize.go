package comment

import "strings"

// Normalize strips comment delimiters and per-line decoration from text and
// returns the remaining lines in order.
//
// Block comments ("/* */", "/** */") lose the opening delimiter with any run
// of extra "*", the closing "*/" with any run of "*" before it, and a single
// leading "*" on each line along with the whitespace before it. Line comments lose the "//" marker (and any
// extra "/") on each line that carries one. Lines without decoration are
// returned unchanged.
//
// Empty input, and input that does not start with a comment delimiter,
// returns nil.
func Normalize(text string) []string {
	text = strings.TrimSpace(text)

	var strip func(string) string

	switch {
	case strings.HasPrefix(text, "/*"):
		body := text[2:]
		body = strings.TrimSuffix(body, "*/")
		body = strings.TrimRight(body, "*")
		text = strings.TrimLeft(body, "*")
		strip = stripStar

	case strings.HasPrefix(text, "//"):
		strip = stripSlashes

	default:
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strip(strings.TrimSuffix(line, "\r"))
	}

	return lines
}

func stripStar(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if rest, ok := strings.CutPrefix(trimmed, "*"); ok {
		return rest
	}

	return line
}

func stripSlashes(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if rest, ok := strings.CutPrefix(trimmed, "//"); ok {
		return strings.TrimLeft(rest, "/")
	}

	return line
}
