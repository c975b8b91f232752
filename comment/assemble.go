package comment

import "strings"

type route int

const (
	routeTag route = iota
	routeDescription
	routeExample
)

// routes maps reserved tag keys to where their buffers end up. Keys not in
// the table become tags. Matching is case-sensitive.
var routes = map[string]route{
	KeyDescription: routeDescription,
	KeyExample:     routeExample,
}

// assemble folds closed buffers into a [Comment].
func assemble(bufs []*buffer) Comment {
	c := Comment{
		Tags:     []Tag{},
		Examples: []Example{},
	}

	var (
		freeText    string
		descTag     string
		haveDescTag bool
	)

	for _, b := range bufs {
		if b.origin == inDescription {
			freeText = strings.TrimSpace(b.joinTrimmed())

			continue
		}

		switch routes[b.key] {
		case routeDescription:
			descTag = strings.TrimSpace(b.join())
			haveDescTag = true

		case routeExample:
			c.Examples = append(c.Examples, Example{
				Type: TypeExample,
				Raw:  b.raw,
				Key:  b.key,
				Val:  trimBlock(b.join()),
			})

		case routeTag:
			c.Tags = append(c.Tags, Tag{
				Type: TypeTag,
				Raw:  b.raw,
				Key:  b.key,
				Val:  strings.TrimSpace(b.join()),
			})
		}
	}

	c.Description = freeText
	if haveDescTag {
		c.Description = descTag
	}

	return c
}

// trimBlock drops leading blank lines and trailing whitespace, keeping the
// indentation of the first non-blank line.
func trimBlock(s string) string {
	s = strings.TrimRight(s, " \t\r\n")

	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 || strings.TrimSpace(s[:i]) != "" {
			break
		}

		s = s[i+1:]
	}

	return s
}
