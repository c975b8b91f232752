package comment

const (
	// TypeTag is the [Tag.Type] of every tag.
	TypeTag = "tag"
	// TypeExample is the [Example.Type] of every example.
	TypeExample = "example"
)

// Reserved keys that the assembler routes away from [Comment.Tags].
const (
	KeyDescription = "description"
	KeyExample     = "example"
)

// Comment is the tokenized form of one documentation comment.
//
// Tags and Examples are never nil, so they always encode as arrays.
type Comment struct {
	Description string    `json:"description" yaml:"description"`
	Tags        []Tag     `json:"tags"        yaml:"tags"`
	Examples    []Example `json:"examples"    yaml:"examples"`
}

// Tag is one "@key value" entry and its continuation lines.
type Tag struct {
	// Type is always [TypeTag].
	Type string `json:"type" yaml:"type"`
	// Raw is the trimmed opening line, e.g. "@param {string} name".
	// Continuation lines never appear in Raw.
	Raw string `json:"raw" yaml:"raw"`
	// Key is the identifier following "@".
	Key string `json:"key" yaml:"key"`
	// Val is the remainder of the opening line joined with each continuation
	// line by "\n", trimmed of surrounding whitespace.
	Val string `json:"val" yaml:"val"`
}

// Example is the captured body of an "@example" tag. The body is kept as
// raw text; leading blank lines and trailing whitespace are dropped.
type Example struct {
	// Type is always [TypeExample].
	Type string `json:"type" yaml:"type"`
	Raw  string `json:"raw"  yaml:"raw"`
	Key  string `json:"key"  yaml:"key"`
	Val  string `json:"val"  yaml:"val"`
}

// Tag returns the tag with the given key at the given occurrence index, in
// source order. The second result is false when there is no such tag.
func (c Comment) Tag(key string, n int) (Tag, bool) {
	for _, t := range c.Tags {
		if t.Key != key {
			continue
		}

		if n == 0 {
			return t, true
		}

		n--
	}

	return Tag{}, false
}

// TagsByKey returns every tag with the given key, in source order.
func (c Comment) TagsByKey(key string) []Tag {
	var tags []Tag

	for _, t := range c.Tags {
		if t.Key == key {
			tags = append(tags, t)
		}
	}

	return tags
}
