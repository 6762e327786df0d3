package domain

// OpenResult is what the host environment reported for an open attempt.
type OpenResult int

const (
	OpenSucceeded OpenResult = iota
	OpenBlocked
)

func (r OpenResult) String() string {
	if r == OpenBlocked {
		return "blocked"
	}
	return "opened"
}

// Fallback describes the in-page navigation used when the handoff is blocked.
type Fallback struct {
	Anchor   string `json:"anchor"`
	Behavior string `json:"behavior"`
}

// HandoffResult is the outcome of one external handoff.
type HandoffResult struct {
	Link     string
	Outcome  OpenResult
	Fallback *Fallback // set only when Outcome is OpenBlocked
}
