package socket

import "strings"

// maxDiagnosticLen bounds diagnostics built from server error bodies, which
// can run to hundreds of KB. The boundary is strictly greater-than: a
// diagnostic of exactly this length is left untouched.
const maxDiagnosticLen = 100

const invalidJSONMarker = "Invalid JSON response"

// fallbackNotice is used when the body carries the invalid-JSON marker but
// the arrow-prefixed detail is empty after trimming.
const fallbackNotice = "No error details in the response. Please report this to the Socket team."

// formatDiagnostic turns a raw response body into a short, stable diagnostic.
// It never fails: when no clean extraction applies it degrades to appending
// the raw body to the status message.
//
// Precedence is fixed: embedded marker extraction first, statusMessage
// substitution second, generic append last.
func formatDiagnostic(statusMessage, body string) string {
	diag, ok := extractInvalidJSONDetail(body)
	if !ok {
		if strings.Contains(body, statusMessage) {
			// The body restates the status line, so it is the more
			// specific diagnostic on its own.
			diag = body
		} else {
			diag = statusMessage
			if body != "" {
				diag += ": " + body
			}
		}
	}
	return truncateDiagnostic(diag)
}

// truncateDiagnostic caps s at maxDiagnosticLen characters and marks the cut
// with an ellipsis. Strings at or under the cap pass through unchanged. The
// cap counts runes, not bytes, so a multi-byte character is never split.
func truncateDiagnostic(s string) string {
	runes := []rune(s)
	if len(runes) > maxDiagnosticLen {
		return string(runes[:maxDiagnosticLen]) + "..."
	}
	return s
}

// extractInvalidJSONDetail scans body for a marker line followed, after any
// blank lines, by an arrow-prefixed detail line, and returns the detail text.
// A marker whose captured detail is empty yields the fallback notice. A
// marker with no arrow line at all is not a match.
func extractInvalidJSONDetail(body string) (string, bool) {
	lines := splitLines(body)
	for i, line := range lines {
		if !strings.Contains(line, invalidJSONMarker) {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			after, ok := strings.CutPrefix(next, "→")
			if !ok {
				break
			}
			detail := strings.TrimSpace(after)
			if detail == "" {
				return fallbackNotice, true
			}
			return detail, true
		}
		break
	}
	return "", false
}

// splitLines splits on LF, CR or CRLF so marker matching works regardless of
// which line-ending convention the server used.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
