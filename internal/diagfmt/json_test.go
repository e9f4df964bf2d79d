package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"lust/internal/diagfmt"
	"lust/internal/source"
)

func TestJSON_Shape(t *testing.T) {
	bag, fs := makeBag("(a b)\n", source.Span{Start: 3, End: 4})

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN_EXPECT_SEXPR" {
		t.Errorf("severity/code: got %s/%s", d.Severity, d.Code)
	}
	if d.Location.StartByte != 3 || d.Location.EndByte != 4 {
		t.Errorf("byte range: got [%d,%d)", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 4 {
		t.Errorf("position: got %d:%d, want 1:4", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSON_MaxTruncates(t *testing.T) {
	bag, fs := makeBag("abc\n",
		source.Span{Start: 0, End: 1},
		source.Span{Start: 1, End: 2},
		source.Span{Start: 2, End: 3},
	)

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("expected truncation to 2, got %d", out.Count)
	}
	if bag.Len() != 3 {
		t.Errorf("the bag itself must stay untouched, got %d", bag.Len())
	}
}

func TestJSON_PositionsOmittedByDefault(t *testing.T) {
	bag, fs := makeBag("abc\n", source.Span{Start: 1, End: 2})

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{})
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 0 || loc.StartCol != 0 {
		t.Errorf("positions filled in without IncludePositions: %+v", loc)
	}
}
