package lust_test

import (
	"testing"

	"lust"
)

func TestRead_PublicAPI(t *testing.T) {
	root, errs := lust.Read("(def answer 42)")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if root == nil || root.Len() != 1 {
		t.Fatalf("expected one top-level form")
	}
}

func TestRead_LexFault(t *testing.T) {
	root, errs := lust.Read("@")
	if root != nil {
		t.Error("lex faults must drop the tree")
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if _, ok := errs[0].(lust.LexError); !ok {
		t.Errorf("expected LexError, got %T", errs[0])
	}
}

func TestRead_ParseFaultKeepsTree(t *testing.T) {
	root, errs := lust.Read("() after")
	if root == nil {
		t.Fatal("parse faults must keep the tree")
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	pe, ok := errs[0].(lust.ParseError)
	if !ok {
		t.Fatalf("expected ParseError, got %T", errs[0])
	}
	if pe.Expected == "" || pe.Found == "" {
		t.Errorf("ParseError must carry expected/found: %+v", pe)
	}
}

func TestReadWith_AndPrint(t *testing.T) {
	interner := lust.NewInterner()
	root, errs := lust.ReadWith(interner, "demo.lust", "'(a [b] #[c])")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	printed := lust.Print(interner, root)
	if printed != "(quote (a [b] #[c]))" {
		t.Errorf("printed as %q", printed)
	}

	again, errs := lust.ReadWith(interner, "demo2.lust", printed)
	if len(errs) != 0 {
		t.Fatalf("reprint did not re-read: %v", errs)
	}
	if again.Len() != root.Len() {
		t.Errorf("round trip changed form count")
	}
}
