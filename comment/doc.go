// Package comment tokenizes a single documentation comment into a
// description, an ordered list of tags, and an ordered list of examples.
//
// [Tokenize] is a pure function. It takes the full literal text of one
// comment, delimiters included, and never fails: empty input, input without
// comment delimiters, and stray "@" characters all produce a best-effort
// [Comment] rather than an error.
//
//	c := comment.Tokenize(`/**
//	 * Adds two numbers.
//	 *
//	 * @param {number} a
//	 * @param {number} b
//	 * @return {number} The sum of a and b,
//	 *                  never NaN.
//	 */`)
//
//	c.Description // "Adds two numbers."
//	c.Tags[2].Raw // "@return {number} The sum of a and b,"
//	c.Tags[2].Val // "{number} The sum of a and b,\n                  never NaN."
//
// # Pipeline
//
// Tokenization runs three passes over the comment:
//
//  1. Normalize: the opening and closing delimiters are removed, and each
//     line loses its leading decoration (whitespace followed by a single
//     "*", or the "//" marker of line comments). Text after the decoration
//     is kept verbatim, so indentation inside wrapped tag values survives.
//     Blank lines are kept.
//
//  2. Classify: a two-state machine walks the lines once. It starts in the
//     description state. A line that matches "@" followed by an identifier
//     closes the open buffer and opens a new tag buffer; any other line is
//     appended to the open buffer. A blank line never closes a tag.
//
//  3. Assemble: closed buffers are routed by key. A "description" tag
//     replaces the free-text description, an "example" tag becomes an
//     [Example], and every other key becomes a [Tag]. Values are joined with
//     newlines and trimmed. Lines of the free-text description are also
//     trimmed one by one; tag values keep the indentation of their
//     continuation lines.
//
// # Malformed tags
//
// A line whose "@" is not followed by a letter (for example "@ foo" or
// "@{x}") does not start a tag. It is folded into the open buffer as a
// continuation line. This recovery is best-effort; no stricter splitting of
// malformed tag runs is attempted.
package comment
