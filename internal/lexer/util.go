package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// ===== Rune access on top of Cursor =====

// peekRune decodes the rune at the cursor.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // ASCII fast-path
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune advances the cursor by the size of the current rune.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Classifiers =====

// Symbol names follow Lisp conventions: letters plus a fixed set of
// operator characters. '.' is excluded (path separator), and so are the
// reader-macro markers and delimiters.
func isSymbolStartByte(b byte) bool {
	if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
		return true
	}
	switch b {
	case '+', '-', '*', '/', '<', '>', '=', '!', '?', '_', '%', '^', '~', '&':
		return true
	}
	return false
}

func isSymbolContinueByte(b byte) bool {
	return isSymbolStartByte(b) || isDec(b)
}

func isSymbolStartRune(r rune) bool {
	if r < utf8RuneSelf {
		return isSymbolStartByte(byte(r))
	}
	return unicode.IsLetter(r)
}

func isSymbolContinueRune(r rune) bool {
	if r < utf8RuneSelf {
		return isSymbolContinueByte(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// The "+5" / "-5" case: sign now, digit right after?
func (lx *Lexer) isDigitAfterSign() bool {
	_, b1, ok := lx.cursor.Peek2()
	return ok && isDec(b1)
}

// ===== Greedy operator matchers =====

// try2/try3 consume 2/3 bytes when they match exactly.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
