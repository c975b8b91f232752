// Package extract finds comment blocks in JavaScript and TypeScript source so
// they can be handed to [github.com/jtwebb/tokenize-comment/comment.Tokenize].
//
// [Extractor.Blocks] runs a small lexer over the source. It tracks string
// literals (single, double, and backtick quoted, with backslash escapes) and
// line comments, so comment markers inside them are not mistaken for blocks.
// By default only doc blocks (those opening with "/**") are returned;
// [WithAllBlocks] includes plain "/*" blocks as well, and [WithRaw] skips
// lexing and treats the whole input as one comment.
//
// Regular expression literals are not recognized. A quote inside a regex
// literal opens a string that runs to the end of that line.
//
// [Extractor.Files] expands directory arguments into the source files they
// contain:
//
//	ex := extract.New(extract.WithExtensions(".js", ".ts"))
//
//	paths, err := ex.Files(ctx, []string{"src", "index.js"})
//	if err != nil {
//	    return err
//	}
//
//	for _, p := range paths {
//	    src, err := os.ReadFile(p)
//	    // ...
//	    for _, b := range ex.Blocks(src) {
//	        c := comment.Tokenize(b.Text)
//	    }
//	}
package extract
