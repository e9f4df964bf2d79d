// Package reader turns source text into a span-annotated sexpr tree.
//
// Reading is two-phase. The whole input is tokenized first; any lexical
// fault aborts the read and no tree is produced. The token stream is then
// parsed by recursive descent. Parse faults do not abort: the reader
// records the fault, resynchronizes at the next plausible top-level form,
// and keeps going, so one read reports every fault it can find.
package reader
