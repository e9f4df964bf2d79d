package diag

// Severity ranks how serious a diagnostic is.
type Severity uint8

const (
	// SevInfo is informational output; reading is unaffected.
	SevInfo Severity = iota
	// SevWarning flags suspicious input that still reads.
	SevWarning
	// SevError flags a fault; the read result is incomplete or absent.
	SevError
)

// String returns the label used in rendered diagnostics.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
