package wikilens

import "time"

// Report aggregates the diff, metrics, and generated narrative sections
// for one snapshot pair. Narrative fields are populated once per pair and
// cached for the session; a new pair produces a new Report.
type Report struct {
	OldLabel        string        `json:"old_label"`
	NewLabel        string        `json:"new_label"`
	Diff            string        `json:"diff"`
	Metrics         ChangeMetrics `json:"metrics"`
	Impact          string        `json:"impact"`
	Recommendations string        `json:"recommendations"`
	Risk            string        `json:"risk"`
	QALog           []QAEntry     `json:"qa_log,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// QAEntry records one follow-up question and its answer.
type QAEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ReportStore persists analysis reports between sessions.
type ReportStore interface {
	// Load reads all reports from path. A missing file is not an error.
	Load(path string) ([]Report, error)
	// Save writes reports to path, creating parent directories if needed.
	Save(path string, reports []Report) error
	// Append adds a single report to the end of the file at path.
	Append(path string, report Report) error
}
