// Package audit records a per-run trail of pipeline events. Each run owns its
// own Trail, so concurrent jobs never interleave entries.
package audit

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is a single timestamped trail event.
type Entry struct {
	Time    time.Time `json:"time"`
	Stage   string    `json:"stage"`
	Message string    `json:"message"`
}

// Trail collects entries for one pipeline run.
type Trail struct {
	RunID   string    `json:"runId"`
	Started time.Time `json:"started"`
	Entries []Entry   `json:"entries"`
}

// NewTrail creates a Trail for the given run.
func NewTrail(runID string) *Trail {
	return &Trail{
		RunID:   runID,
		Started: time.Now().UTC(),
	}
}

// Add appends a formatted entry under the given stage.
func (t *Trail) Add(stage, format string, args ...interface{}) {
	t.Entries = append(t.Entries, Entry{
		Time:    time.Now().UTC(),
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
	})
}

// Len returns the number of entries recorded so far.
func (t *Trail) Len() int {
	return len(t.Entries)
}

// Document returns the JSON body for indexing into the audit store.
func (t *Trail) Document() ([]byte, error) {
	return json.Marshal(t)
}
