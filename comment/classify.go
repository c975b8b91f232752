package comment

import (
	"regexp"
	"strings"
)

// tagStartRegex matches a line opening a tag: "@" immediately followed by an
// identifier, then an optional single separator and the remainder.
var tagStartRegex = regexp.MustCompile(`^@([A-Za-z][\w-]*)\s?(.*)$`)

type state int

const (
	inDescription state = iota
	inTag
)

// buffer accumulates the lines of the description or of one tag.
type buffer struct {
	key    string
	raw    string
	lines  []string
	origin state
}

func (b *buffer) join() string {
	return strings.Join(b.lines, "\n")
}

// joinTrimmed joins the lines after trimming each one.
func (b *buffer) joinTrimmed() string {
	lines := make([]string, len(b.lines))
	for i, line := range b.lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}

// classifier assigns each normalized line to the description buffer or to
// the open tag buffer.
type classifier struct {
	description *buffer
	tag         *buffer
	closed      []*buffer
	state       state
}

func newClassifier() *classifier {
	return &classifier{
		description: &buffer{origin: inDescription},
		state:       inDescription,
	}
}

// classify runs the state machine over lines and returns the closed buffers
// in source order. The first buffer is always the description buffer.
func classify(lines []string) []*buffer {
	c := newClassifier()
	for _, line := range lines {
		c.feed(line)
	}

	return c.finish()
}

func (c *classifier) feed(line string) {
	m := tagStartRegex.FindStringSubmatch(strings.TrimSpace(line))
	if m != nil {
		c.closeOpen()

		c.tag = &buffer{
			key:    m[1],
			raw:    m[0],
			lines:  []string{m[2]},
			origin: inTag,
		}
		c.state = inTag

		return
	}

	switch c.state {
	case inDescription:
		c.description.lines = append(c.description.lines, line)
	case inTag:
		c.tag.lines = append(c.tag.lines, line)
	}
}

// closeOpen pushes whatever buffer is open onto the closed sequence.
func (c *classifier) closeOpen() {
	switch c.state {
	case inDescription:
		c.closed = append(c.closed, c.description)
	case inTag:
		c.closed = append(c.closed, c.tag)
		c.tag = nil
	}
}

func (c *classifier) finish() []*buffer {
	c.closeOpen()

	return c.closed
}
