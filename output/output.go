package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jtwebb/tokenize-comment/comment"
)

// Sentinel errors returned by the encoder.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrWriteOutput   = errors.New("write output")
)

// Format is an output encoding.
type Format string

const (
	// FormatJSON encodes documents as a JSON array.
	FormatJSON Format = "json"
	// FormatYAML encodes documents as a YAML sequence.
	FormatYAML Format = "yaml"
)

const defaultIndent = 2

var allFormats = []Format{FormatJSON, FormatYAML}

// Document is one tokenized comment and its location.
type Document struct {
	// File is the path the comment was read from, or "-" for stdin.
	File string `json:"file" yaml:"file"`
	// Line and EndLine are the 1-based lines of the comment's delimiters.
	Line    int             `json:"line,omitempty"    yaml:"line,omitempty"`
	EndLine int             `json:"endLine,omitempty" yaml:"endLine,omitempty"`
	Comment comment.Comment `json:"comment"           yaml:"comment"`
}

// Encoder writes [Document] lists.
//
// Create instances with [NewEncoder].
type Encoder struct {
	format Format
	indent int
}

// Option configures an [Encoder].
type Option func(*Encoder)

// NewEncoder creates an [Encoder] with the given options. The default is
// JSON indented by two spaces.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		format: FormatJSON,
		indent: defaultIndent,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithFormat sets the output format.
func WithFormat(f Format) Option {
	return func(e *Encoder) {
		e.format = f
	}
}

// WithIndent sets the number of spaces per indentation level. Zero produces
// compact JSON; YAML always indents, so zero falls back to two spaces there.
// Negative values are clamped to zero.
func WithIndent(n int) Option {
	return func(e *Encoder) {
		e.indent = max(n, 0)
	}
}

// Marshal encodes docs. The result always ends with a newline, and an empty
// or nil list encodes as an empty array.
func (e *Encoder) Marshal(docs []Document) ([]byte, error) {
	if docs == nil {
		docs = []Document{}
	}

	switch e.format {
	case FormatJSON:
		return e.marshalJSON(docs)
	case FormatYAML:
		return e.marshalYAML(docs)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
}

// Encode writes the encoding of docs to w.
func (e *Encoder) Encode(w io.Writer, docs []Document) error {
	out, err := e.Marshal(docs)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func (e *Encoder) marshalJSON(docs []Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", e.indent))

	err := enc.Encode(docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return buf.Bytes(), nil
}

func (e *Encoder) marshalYAML(docs []Document) ([]byte, error) {
	indent := e.indent
	if indent == 0 {
		indent = defaultIndent
	}

	out, err := yaml.MarshalWithOptions(docs, yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}

	return out, nil
}

// ParseFormat parses an output format string, case-insensitively.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains(allFormats, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// GetAllFormatStrings returns every accepted format name.
func GetAllFormatStrings() []string {
	out := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		out = append(out, string(f))
	}

	return out
}
