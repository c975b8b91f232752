package comment

// Tokenize parses the full text of one comment, delimiters included, into a
// [Comment]. It never fails and holds no state between calls, so it is safe
// for concurrent use.
func Tokenize(text string) Comment {
	return assemble(classify(Normalize(text)))
}
