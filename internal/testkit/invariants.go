// Package testkit holds shared helpers for tests across packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lust/internal/sexpr"
	"lust/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a read tree:
// 1) root.Span is within file content bounds
// 2) every node span points at the file and nests inside its parent
// 3) root.Span covers the union of top-level spans (if any exist)
func CheckSpanInvariants(root *sexpr.Root, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}

	rs := root.Span()
	if rs.File != sf.ID {
		return fmt.Errorf("root span points to different file id: got=%d want=%d", rs.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if rs.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", rs.End, lenContent)
	}

	var union source.Span
	var haveTop bool
	for _, s := range root.Sexprs() {
		sp := s.Span()
		if sp.End <= sp.Start {
			return fmt.Errorf("empty top-level span: %v", sp)
		}
		if !rs.Contains(sp) {
			return fmt.Errorf("top-level span %v is outside root span %v", sp, rs)
		}
		if err := checkNode(s, sf.ID); err != nil {
			return err
		}
		if !haveTop {
			union = sp
			haveTop = true
		} else {
			union = union.Cover(sp)
		}
	}

	if haveTop && !rs.Contains(union) {
		return fmt.Errorf("root span %v does not cover union of top-level spans %v", rs, union)
	}
	return nil
}

func checkNode(s sexpr.Sexpr, fileID source.FileID) error {
	sp := s.Span()
	if sp.File != fileID {
		return fmt.Errorf("node span file mismatch: got=%d want=%d", sp.File, fileID)
	}
	for _, child := range s.Children() {
		cs := child.Span()
		// Synthesized heads of desugared forms share the parent's extent,
		// so containment, not strict nesting, is the invariant.
		if !sp.Contains(cs) {
			return fmt.Errorf("child span %v is outside parent span %v", cs, sp)
		}
		if err := checkNode(child, fileID); err != nil {
			return err
		}
	}
	return nil
}
