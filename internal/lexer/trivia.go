package lexer

// skipTrivia consumes whitespace and comments before a significant token.
// Trivia carries no token (the reader never sees it):
//   - spaces, tabs, newlines, stray '\r'
//   - ';' line comments up to (not including) the newline
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		if b == ';' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}

		break
	}
}
