// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output, markdown reports, and logs.
// Keep raw codes for JSON fields, map keys, and equality comparisons.
package display

// --- Host Families ---

var families = map[string]string{
	"posix":   "POSIX-like",
	"windows": "Windows-like",
}

// FamilyName returns the human-readable name for a host family code.
// Unknown codes are returned as-is.
func FamilyName(code string) string {
	if name, ok := families[code]; ok {
		return name
	}
	return code
}

// --- Verification Outcomes ---

var outcomes = map[string]string{
	"verified":     "Verified",
	"not-verified": "Not Verified",
}

// Outcome returns the human-readable name for a verification outcome code.
func Outcome(code string) string {
	if name, ok := outcomes[code]; ok {
		return name
	}
	return code
}

// --- Doctor Check Kinds ---

var checkKinds = map[string]string{
	"checkout": "Checkout",
	"docs":     "Built Docs",
	"binary":   "Interpreter",
	"tool":     "Tool",
}

// CheckKind returns the human-readable name for a doctor check kind.
func CheckKind(code string) string {
	if name, ok := checkKinds[code]; ok {
		return name
	}
	return code
}
