package utilcss

import (
	"fmt"
	"strings"
)

// Diagnostic records a per-class or per-file problem that was recovered
// locally instead of failing the run. Callers decide whether to treat the
// aggregated list as fatal.
type Diagnostic struct {
	Severity string `json:"Severity"` // "error" or "warning"
	Source   string `json:"Source"`   // class string or file path the problem belongs to
	Message  string `json:"Message"`
}

// Diagnostic severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// TokenizeConflictError reports modifier text that no registered variant
// recognizes and that could not be folded into the base utility. It usually
// indicates a typo, so it is surfaced rather than silently dropped.
type TokenizeConflictError struct {
	Modifier string
}

func (e *TokenizeConflictError) Error() string {
	return fmt.Sprintf("unknown modifier %q", e.Modifier)
}

// VariantConflictError reports mutually exclusive or malformed modifier
// combinations, naming the offending modifiers.
type VariantConflictError struct {
	Modifiers []string
	Reason    string
}

func (e *VariantConflictError) Error() string {
	return fmt.Sprintf("conflicting modifiers %s: %s", strings.Join(e.Modifiers, ", "), e.Reason)
}
