// Package diag carries the diagnostics produced while reading: severity,
// stable codes, spanned messages, and the Bag that collects them.
//
// Phases never print; they report into a Reporter and the caller decides
// how to render the resulting Bag (see diagfmt).
package diag
