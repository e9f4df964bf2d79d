package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical faults.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexNewlineInString    Code = 1003
	LexBadNumber          Code = 1004

	// Grammar faults.
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedEOF      Code = 2002
	SynExpectSexpr        Code = 2003
	SynExpectCloseParen   Code = 2004
	SynExpectCloseBracket Code = 2005
	SynExpectIdentifier   Code = 2006
	SynEmptyList          Code = 2007

	// Literal-conversion faults: the lexeme matched the literal pattern
	// but its text does not parse to a legal value.
	SynBadIntLiteral      Code = 2100
	SynBadRealLiteral     Code = 2101
	SynBadRationalLiteral Code = 2102

	// Driver-level I/O.
	IOLoadFileError Code = 9001
)

var codeIDs = map[Code]string{
	UnknownCode:           "UNKNOWN",
	LexInfo:               "LEX_INFO",
	LexUnknownChar:        "LEX_UNKNOWN_CHAR",
	LexUnterminatedString: "LEX_UNTERMINATED_STRING",
	LexNewlineInString:    "LEX_NEWLINE_IN_STRING",
	LexBadNumber:          "LEX_BAD_NUMBER",
	SynInfo:               "SYN_INFO",
	SynUnexpectedToken:    "SYN_UNEXPECTED_TOKEN",
	SynUnexpectedEOF:      "SYN_UNEXPECTED_EOF",
	SynExpectSexpr:        "SYN_EXPECT_SEXPR",
	SynExpectCloseParen:   "SYN_EXPECT_CLOSE_PAREN",
	SynExpectCloseBracket: "SYN_EXPECT_CLOSE_BRACKET",
	SynExpectIdentifier:   "SYN_EXPECT_IDENTIFIER",
	SynEmptyList:          "SYN_EMPTY_LIST",
	SynBadIntLiteral:      "SYN_BAD_INT_LITERAL",
	SynBadRealLiteral:     "SYN_BAD_REAL_LITERAL",
	SynBadRationalLiteral: "SYN_BAD_RATIONAL_LITERAL",
	IOLoadFileError:       "IO_LOAD_FILE_ERROR",
}

// ID returns the stable symbolic name of the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("CODE_%04d", uint16(c))
}

func (c Code) String() string {
	return fmt.Sprintf("%s(%04d)", c.ID(), uint16(c))
}

// IsLex reports whether the code belongs to the lexical fault range.
func (c Code) IsLex() bool { return c >= 1000 && c < 2000 }

// IsSyntax reports whether the code belongs to the grammar fault range.
func (c Code) IsSyntax() bool { return c >= 2000 && c < 3000 }
