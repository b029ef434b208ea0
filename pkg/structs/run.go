package structs

type Run struct {
	ID     string `json:"id"`
	Status Status `json:"status"`

	// Stages in the order they were executed (or skipped).
	Stages []*StageResult `json:"stages"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

type StageResult struct {
	Stage  Stage  `json:"stage"`
	Status Status `json:"status"`

	// Message holds the error text of a failed (or suppressed) stage.
	Message string `json:"message"`

	StartedAt  int64 `json:"started_at"`
	FinishedAt int64 `json:"finished_at"`
}

// Failed returns true if any stage errored.
//
// Note that a suppressed stage never reaches ERRORED; it is recorded
// as SKIPPED with the error text in Message.
func (r *Run) Failed() bool {
	for _, s := range r.Stages {
		if s.Status == ERRORED {
			return true
		}
	}
	return false
}

// Result returns the result of the given stage, if it was reached.
func (r *Run) Result(stage Stage) *StageResult {
	for _, s := range r.Stages {
		if s.Stage == stage {
			return s
		}
	}
	return nil
}
