// Package speech holds the server-side view of a browser speech-recognition stream:
// the transcript being built from result events and the bounded restart policy.
package speech

import (
	"regexp"
	"strings"
)

var interimPattern = regexp.MustCompile(`\[.*\]`)

// Transcript accumulates finalized segments and the latest interim segment.
type Transcript struct {
	Final   []string `json:"final"`
	Interim string   `json:"interim,omitempty"`
}

// Apply records one recognition result. A final result replaces the pending interim text.
func (t *Transcript) Apply(text string, final bool) {
	text = strings.TrimSpace(text)
	if final {
		if text != "" {
			t.Final = append(t.Final, text)
		}
		t.Interim = ""
		return
	}
	t.Interim = text
}

// Display is the live view shown while recording: finalized text plus the interim
// segment in brackets.
func (t *Transcript) Display() string {
	base := strings.Join(t.Final, " ")
	if t.Interim == "" {
		return base
	}
	return strings.TrimSpace(base + " [" + t.Interim + "]")
}

// Finalize returns the transcript with interim text dropped.
func (t *Transcript) Finalize() string {
	return strings.TrimSpace(strings.Join(t.Final, " "))
}

// Reset clears all recorded text.
func (t *Transcript) Reset() {
	t.Final = nil
	t.Interim = ""
}

// StripInterim removes a bracketed interim suffix from a display transcript.
func StripInterim(display string) string {
	return strings.TrimSpace(interimPattern.ReplaceAllString(display, ""))
}
