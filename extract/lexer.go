package extract

import "strings"

type lexState int

const (
	lexCode lexState = iota
	lexLineComment
	lexBlockComment
	lexString
)

// Blocks returns the comment blocks in src, in source order.
func (e *Extractor) Blocks(src []byte) []Block {
	if e.raw {
		text := string(src)

		return []Block{{
			Text:    text,
			Line:    1,
			EndLine: 1 + strings.Count(strings.TrimRight(text, "\n"), "\n"),
		}}
	}

	var (
		blocks    []Block
		state     = lexCode
		quote     byte
		line      = 1
		start     int
		startLine int
	)

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch state {
		case lexCode:
			switch {
			case c == '/' && next(src, i) == '/':
				state = lexLineComment
				i++
			case c == '/' && next(src, i) == '*':
				state = lexBlockComment
				start, startLine = i, line
				i++
			case c == '"' || c == '\'' || c == '`':
				state = lexString
				quote = c
			}

		case lexLineComment:
			if c == '\n' {
				state = lexCode
			}

		case lexBlockComment:
			if c == '*' && next(src, i) == '/' {
				i++
				blocks = e.keep(blocks, Block{
					Text:    string(src[start : i+1]),
					Line:    startLine,
					EndLine: line,
					Offset:  start,
				})
				state = lexCode
			}

		case lexString:
			switch {
			case c == '\\':
				if next(src, i) == '\n' {
					line++
				}

				i++
			case c == quote:
				state = lexCode
			case c == '\n' && quote != '`':
				// Unterminated string literal.
				state = lexCode
			}
		}

		if c == '\n' {
			line++
		}
	}

	if state == lexBlockComment {
		text := strings.TrimRight(string(src[start:]), " \t\r\n")
		blocks = e.keep(blocks, Block{
			Text:    text,
			Line:    startLine,
			EndLine: startLine + strings.Count(text, "\n"),
			Offset:  start,
		})
	}

	return blocks
}

func (e *Extractor) keep(blocks []Block, b Block) []Block {
	if e.allBlocks || isDocBlock(b.Text) {
		return append(blocks, b)
	}

	return blocks
}

func isDocBlock(text string) bool {
	return strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/**/")
}

func next(src []byte, i int) byte {
	if i+1 < len(src) {
		return src[i+1]
	}

	return 0
}
