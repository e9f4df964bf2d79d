package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lust/internal/diag"
	"lust/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan, color.Bold)
)

// Pretty renders diagnostics for humans. It walks bag.Items() in order
// (call bag.Sort() first). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line and a ^~~~ underline covering the
// span, then the notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, end := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(file, fs, opts.PathMode),
		start.Line, start.Col,
		sevLabel(d.Severity, opts.Color),
		d.Code.ID(),
		d.Message,
	)
	underlineLine(w, file, d.Primary, start, end)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			ns, ne := fs.Resolve(note.Span)
			nf := fs.Get(note.Span.File)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
				formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, note.Msg)
			underlineLine(w, nf, note.Span, ns, ne)
		}
	}
}

// underlineLine prints the first line the span touches with a gutter and
// a caret marker. Widths are measured with runewidth so wide runes keep
// the marker aligned.
func underlineLine(w io.Writer, file *source.File, sp source.Span, start, end source.LineCol) {
	if file == nil {
		return
	}
	line := file.GetLine(start.Line)
	if line == "" && sp.Empty() && int(sp.Start) >= len(file.Content) {
		// Faults at the end-of-input sentinel have no line to show.
		return
	}
	gutter := fmt.Sprintf("%5d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	// Column numbers are 1-based byte columns within the line.
	before := sliceCols(line, 0, int(start.Col)-1)
	pad := runewidth.StringWidth(before)

	markedEnd := len(line)
	if end.Line == start.Line {
		markedEnd = int(end.Col) - 1
	}
	marked := sliceCols(line, int(start.Col)-1, markedEnd)
	width := runewidth.StringWidth(marked)
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "%s%s^%s\n",
		strings.Repeat(" ", len(gutter)),
		strings.Repeat(" ", pad),
		strings.Repeat("~", width-1),
	)
}

// sliceCols clamps a byte range into line and returns the slice.
func sliceCols(line string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(line) {
		to = len(line)
	}
	if from >= to {
		return ""
	}
	return line[from:to]
}

func sevLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return sevErrorColor.Sprint(label)
	case diag.SevWarning:
		return sevWarningColor.Sprint(label)
	default:
		return sevInfoColor.Sprint(label)
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	case PathModeAuto:
		return f.FormatPath("auto", "")
	default:
		return f.Path
	}
}
