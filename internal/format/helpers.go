package format

import (
	"fmt"
	"time"
)

// FmtBytes formats a byte count with a KB/MB/GB suffix for readability.
// Interpreter binaries land in the tens of megabytes; doc trees can
// reach gigabytes.
func FmtBytes(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fGB", float64(n)/1_000_000_000.0)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fMB", float64(n)/1_000_000.0)
	case n >= 1000:
		return fmt.Sprintf("%.1fKB", float64(n)/1000.0)
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// FmtDuration formats a duration as "Xm Ys" or "Ys".
func FmtDuration(d time.Duration) string {
	s := int(d.Seconds())
	if s >= 60 {
		return fmt.Sprintf("%dm %ds", s/60, s%60)
	}
	return fmt.Sprintf("%ds", s)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
