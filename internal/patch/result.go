// Package patch implements the documentation maintenance operations: row
// injection, full page generation, and imperative-refs section replacement.
//
// Each operation processes its file list sequentially with per-file
// catch-and-continue semantics; there is no atomicity across files. Every run
// produces a Report listing the outcome of each file, and callers decide the
// process exit code from Report.HasFailures.
package patch

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status classifies the outcome of one file within a run.
type Status string

const (
	// StatusPatched means the file was modified in place.
	StatusPatched Status = "patched"
	// StatusWritten means the file was (re)written from scratch.
	StatusWritten Status = "written"
	// StatusSkipped means the file already matched the desired content.
	StatusSkipped Status = "skipped"
	// StatusFailed means the file could not be processed; the run continued.
	StatusFailed Status = "failed"
)

// Outcome is the result of processing a single file.
type Outcome struct {
	File   string `json:"file"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report is the structured result of one run of an operation.
type Report struct {
	RunID    string    `json:"run_id"`
	Command  string    `json:"command"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
	Outcomes []Outcome `json:"outcomes"`
}

// NewReport starts a report for the named command with a fresh run ID.
func NewReport(command string) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Command: command,
		Started: time.Now().UTC(),
	}
}

// Add records the outcome for one file.
func (r *Report) Add(file string, status Status, detail string, err error) {
	o := Outcome{File: file, Status: status, Detail: detail}
	if err != nil {
		o.Error = err.Error()
	}
	r.Outcomes = append(r.Outcomes, o)
}

// Finish stamps the completion time and returns the report for chaining.
func (r *Report) Finish() *Report {
	r.Finished = time.Now().UTC()
	return r
}

// Count returns the number of outcomes with the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// HasFailures reports whether any file failed.
func (r *Report) HasFailures() bool { return r.Count(StatusFailed) > 0 }

// ChangedFiles returns the files that were actually modified or written.
func (r *Report) ChangedFiles() []string {
	var files []string
	for _, o := range r.Outcomes {
		if o.Status == StatusPatched || o.Status == StatusWritten {
			files = append(files, o.File)
		}
	}
	return files
}

// Summary returns a one-line human-readable digest of the run.
func (r *Report) Summary() string {
	parts := []string{fmt.Sprintf("%d files", len(r.Outcomes))}
	for _, s := range []Status{StatusPatched, StatusWritten, StatusSkipped, StatusFailed} {
		if n := r.Count(s); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	return fmt.Sprintf("%s: %s", r.Command, strings.Join(parts, ", "))
}
