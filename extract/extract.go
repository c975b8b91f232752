package extract

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel errors returned by the extractor.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrReadInput     = errors.New("read input")
)

// Stdin is the path argument that stands for standard input.
const Stdin = "-"

// Block is one comment found in a source file.
type Block struct {
	// Text is the comment including its delimiters.
	Text string
	// Line and EndLine are the 1-based lines of the opening and closing
	// delimiters.
	Line    int
	EndLine int
	// Offset is the byte offset of the opening delimiter.
	Offset int
}

// Extractor finds comment blocks in source text and source files in
// directory trees.
//
// Create instances with [New].
type Extractor struct {
	logger     *slog.Logger
	extensions map[string]bool
	allBlocks  bool
	raw        bool
}

// Option configures an [Extractor].
type Option func(*Extractor)

// New creates an [Extractor] with the given options. Without
// [WithExtensions], [DefaultExtensions] are used.
func New(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.Default()}
	WithExtensions(DefaultExtensions()...)(e)

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// DefaultExtensions returns the file extensions scanned when none are
// configured.
func DefaultExtensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"}
}

// WithExtensions sets the file extensions [Extractor.Files] collects from
// directories. Matching is case-insensitive and a missing leading dot is
// added.
func WithExtensions(exts ...string) Option {
	return func(e *Extractor) {
		e.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			e.extensions[normalizeExt(ext)] = true
		}
	}
}

// WithLogger sets the logger used to report skipped directories.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = l
	}
}

// WithAllBlocks includes plain "/*" block comments in [Extractor.Blocks]
// results, not only "/**" doc blocks.
func WithAllBlocks(all bool) Option {
	return func(e *Extractor) {
		e.allBlocks = all
	}
}

// WithRaw makes [Extractor.Blocks] return the whole input as a single block.
func WithRaw(raw bool) Option {
	return func(e *Extractor) {
		e.raw = raw
	}
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}
