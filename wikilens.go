// Package wikilens provides domain types for analyzing code changes between
// wiki-hosted snapshots and generating AI-assisted impact reports.
package wikilens

import "strings"

// Snapshot is an immutable capture of text content at a point in time,
// identified by a label (a page title, file path, or revision spec).
type Snapshot struct {
	Label string   `json:"label"`
	Lines []string `json:"lines"`
}

// NewSnapshot splits raw text into logical lines. Line endings are
// normalized first so CRLF input and trailing-newline differences never
// show up as spurious diffs.
func NewSnapshot(label, text string) Snapshot {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Snapshot{Label: label}
	}
	return Snapshot{Label: label, Lines: strings.Split(text, "\n")}
}

// Text reassembles the snapshot content with \n separators.
func (s Snapshot) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Empty reports whether the snapshot has no content.
func (s Snapshot) Empty() bool {
	return len(s.Lines) == 0
}

// OpKind classifies a single line-level edit operation.
type OpKind int

// Edit operation kinds.
const (
	OpContext OpKind = iota
	OpAdd
	OpRemove
)

// EditOp is one line of an edit script.
type EditOp struct {
	Kind    OpKind `json:"kind"`
	Text    string `json:"text"`
	OldLine int    `json:"old_line"` // 0 if the line was added
	NewLine int    `json:"new_line"` // 0 if the line was removed
}

// EditScript is an ordered sequence of edit operations transforming one
// line sequence into another. It is produced once per snapshot pair and
// never mutated.
type EditScript []EditOp

// Counts returns the number of added and removed lines in the script.
// Context lines and rendered headers do not contribute.
func (s EditScript) Counts() (added, removed int) {
	for _, op := range s {
		switch op.Kind {
		case OpAdd:
			added++
		case OpRemove:
			removed++
		}
	}
	return added, removed
}

// Changed reports whether the script contains any add or remove operation.
func (s EditScript) Changed() bool {
	added, removed := s.Counts()
	return added > 0 || removed > 0
}
