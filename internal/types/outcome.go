package types

// OutcomeKind tells what happened to a single directory entry.
type OutcomeKind string

const (
	OutcomeMoved   OutcomeKind = "moved"
	OutcomeSkipped OutcomeKind = "skipped"
	OutcomeFailed  OutcomeKind = "failed"
)

// Skip reasons.
const (
	ReasonIsDirectory = "is_directory"
	ReasonIgnored     = "ignored"
)

type (
	// MoveOutcome records the result of processing one entry.
	MoveOutcome struct {
		Kind      OutcomeKind `json:"kind"`
		Name      string      `json:"name"`
		Category  string      `json:"category,omitempty"`
		FinalName string      `json:"finalName,omitempty"`
		Reason    string      `json:"reason,omitempty"`
		Err       error       `json:"-"`
	}

	// Summary aggregates the outcomes of one pass over a directory.
	Summary struct {
		RunID    string        `json:"runId"`
		Path     string        `json:"path"`
		DryRun   bool          `json:"dryRun,omitempty"`
		Outcomes []MoveOutcome `json:"outcomes"`
		Moved    int           `json:"moved"`
		Renamed  int           `json:"renamed"`
		Skipped  int           `json:"skipped"`
		Failed   int           `json:"failed"`
	}
)

// Renamed reports whether the entry landed under a different name.
func (o MoveOutcome) Renamed() bool {
	return o.Kind == OutcomeMoved && o.FinalName != "" && o.FinalName != o.Name
}

// Add records an outcome and updates the counters.
func (s *Summary) Add(o MoveOutcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch o.Kind {
	case OutcomeMoved:
		s.Moved++
		if o.Renamed() {
			s.Renamed++
		}
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

// NotMoved is the number of entries left in place, skipped or failed.
func (s Summary) NotMoved() int {
	return s.Skipped + s.Failed
}
