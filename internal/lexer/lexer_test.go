package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/source"
	"lust/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lust", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// drop EOF for the comparison
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== scan_symbol.go ======

func TestSymbols_ASCII(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"x123", "x123"},
		{"camelCase", "camelCase"},
		{"UPPER", "UPPER"},
		{"+", "+"},
		{"-", "-"},
		{"*", "*"},
		{"/", "/"},
		{"<=", "<="},
		{"set!", "set!"},
		{"empty?", "empty?"},
		{"->", "->"},
		{"kebab-case", "kebab-case"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestSymbols_Unicode(t *testing.T) {
	tests := []string{"λ", "π", "привет", "日本語"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestBooleans(t *testing.T) {
	expectSingleToken(t, "true", token.BoolLit, "true")
	expectSingleToken(t, "false", token.BoolLit, "false")
}

func TestBooleans_CaseSensitive(t *testing.T) {
	// only lowercase spellings are booleans
	expectSingleToken(t, "True", token.Ident, "True")
	expectSingleToken(t, "FALSE", token.Ident, "FALSE")
}

func TestSymbol_DoesNotSwallowDot(t *testing.T) {
	expectTokens(t, "a.b", []token.Kind{token.Ident, token.Period, token.Ident})
}

// ====== scan_number.go ======

func TestNumbers_Int(t *testing.T) {
	tests := []string{"0", "7", "42", "123456789012345678901234567890", "+5", "-17"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.IntLit, input)
		})
	}
}

func TestNumbers_Real(t *testing.T) {
	tests := []string{"1.5", "0.25", "-3.14", "+0.5"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.RealLit, input)
		})
	}
}

func TestNumbers_Rational(t *testing.T) {
	tests := []string{"1/2", "-3/4", "+7/8", "123456789012345678901/2"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.RationalLit, input)
		})
	}
}

func TestNumbers_BareSignIsSymbol(t *testing.T) {
	expectSingleToken(t, "+", token.Ident, "+")
	expectTokens(t, "- 1", []token.Kind{token.Ident, token.IntLit})
}

func TestNumbers_TrailingDotIsNotReal(t *testing.T) {
	// "1." is an int followed by a period
	expectTokens(t, "1.", []token.Kind{token.IntLit, token.Period})
}

func TestNumbers_GluedSymbolIsFault(t *testing.T) {
	tests := []string{"12abc", "1/2/3", "3.14x"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Fatalf("expected Invalid, got %v (%q)", tok.Kind, tok.Text)
			}
			if reporter.ErrorCount() != 1 {
				t.Errorf("expected 1 error, got %d: %v", reporter.ErrorCount(), reporter.ErrorMessages())
			}
			if reporter.diagnostics[0].Code != diag.LexBadNumber {
				t.Errorf("expected LexBadNumber, got %v", reporter.diagnostics[0].Code)
			}
		})
	}
}

// ====== scan_string.go ======

func TestStrings_Simple(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
	expectSingleToken(t, `""`, token.StringLit, `""`)
}

func TestStrings_Escapes(t *testing.T) {
	expectSingleToken(t, `"a\"b"`, token.StringLit, `"a\"b"`)
	expectSingleToken(t, `"line\nbreak"`, token.StringLit, `"line\nbreak"`)
	expectSingleToken(t, `"back\\slash"`, token.StringLit, `"back\\slash"`)
}

func TestStrings_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer(`"no close`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("expected one LexUnterminatedString, got %v", reporter.ErrorMessages())
	}
}

func TestStrings_NewlineInString(t *testing.T) {
	lx, reporter := makeTestLexer("\"ab\ncd\"")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 || reporter.diagnostics[0].Code != diag.LexNewlineInString {
		t.Errorf("expected one LexNewlineInString, got %v", reporter.ErrorMessages())
	}
}

// ====== scan_punct.go ======

func TestPunct_Singles(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"(", token.LParen},
		{")", token.RParen},
		{"[", token.LBracket},
		{"]", token.RBracket},
		{"'", token.Quote},
		{"`", token.Backquote},
		{",", token.Comma},
		{".", token.Period},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestPunct_Multi(t *testing.T) {
	expectSingleToken(t, "...", token.Ellipsis, "...")
	expectSingleToken(t, ",@", token.CommaAt, ",@")
	expectSingleToken(t, "#[", token.HashLBracket, "#[")
}

func TestPunct_EllipsisGreedy(t *testing.T) {
	// ".." is two periods, "..." is one ellipsis
	expectTokens(t, "..", []token.Kind{token.Period, token.Period})
	expectTokens(t, "....", []token.Kind{token.Ellipsis, token.Period})
}

func TestPunct_CommaThenSymbol(t *testing.T) {
	expectTokens(t, ",x", []token.Kind{token.Comma, token.Ident})
	expectTokens(t, ",@xs", []token.Kind{token.CommaAt, token.Ident})
}

func TestPunct_UnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("#")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("expected one LexUnknownChar, got %v", reporter.ErrorMessages())
	}
}

func TestPunct_TwoStrayChars(t *testing.T) {
	lx, reporter := makeTestLexer("# @")
	tokens := collectAllTokens(lx)
	invalid := 0
	for _, tok := range tokens {
		if tok.Kind == token.Invalid {
			invalid++
		}
	}
	if invalid != 2 {
		t.Errorf("expected 2 Invalid tokens, got %d: %v", invalid, tokensToString(tokens))
	}
	if reporter.ErrorCount() != 2 {
		t.Errorf("expected 2 errors, got %d", reporter.ErrorCount())
	}
}

// ====== trivia.go ======

func TestTrivia_CommentsAndWhitespace(t *testing.T) {
	input := "; a comment\n  foo ; trailing\n\tbar"
	expectTokens(t, input, []token.Kind{token.Ident, token.Ident})
}

func TestTrivia_OnlyComment(t *testing.T) {
	lx, _ := makeTestLexer("; nothing here")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
}

// ====== whole forms ======

func TestForm_Mixed(t *testing.T) {
	input := `(def x '(1 2.5 1/3 "s" true))`
	expectTokens(t, input, []token.Kind{
		token.LParen, token.Ident, token.Ident, token.Quote, token.LParen,
		token.IntLit, token.RealLit, token.RationalLit, token.StringLit,
		token.BoolLit, token.RParen, token.RParen,
	})
}

func TestForm_VariadicAndVector(t *testing.T) {
	expectTokens(t, "(f args... #[1 2])", []token.Kind{
		token.LParen, token.Ident, token.Ident, token.Ellipsis,
		token.HashLBracket, token.IntLit, token.IntLit, token.RBracket,
		token.RParen,
	})
}

func TestPeek_DoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1 != p2 {
		t.Fatalf("Peek is not idempotent: %v vs %v", p1, p2)
	}
	n := lx.Next()
	if n != p1 {
		t.Fatalf("Next did not return the peeked token: %v vs %v", n, p1)
	}
	if lx.Next().Text != "b" {
		t.Fatalf("stream out of order after Peek")
	}
}

func TestEOF_Sticky(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}

func TestSpans_CoverInput(t *testing.T) {
	input := "foo 42"
	lx, _ := makeTestLexer(input)
	first := lx.Next()
	second := lx.Next()

	if first.Span.Start != 0 || first.Span.End != 3 {
		t.Errorf("foo span: got %v, want [0,3)", first.Span)
	}
	if second.Span.Start != 4 || second.Span.End != 6 {
		t.Errorf("42 span: got %v, want [4,6)", second.Span)
	}
	if got := input[first.Span.Start:first.Span.End]; got != "foo" {
		t.Errorf("span slice mismatch: %q", got)
	}
}
