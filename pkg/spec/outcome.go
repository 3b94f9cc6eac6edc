package spec

// Status classifies the outcome of one example.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusErrored Status = "errored"
	StatusPending Status = "pending"
)

// Halts reports whether the status stops the run.
func (s Status) Halts() bool {
	return s == StatusFailed || s == StatusErrored
}

// Outcome is the result of running one example.
type Outcome struct {
	Status  Status
	Subject string // full description of the example
	Message string // success text, diagnostic or pending message
}

// Summary counts outcomes of a run. Individual outcomes are not retained.
type Summary struct {
	Passed  int
	Failed  int
	Errored int
	Pending int
	Halted  bool
}

// Total returns the number of examples that produced an outcome.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Errored + s.Pending
}

// Merge adds the counts of other to s.
func (s Summary) Merge(other Summary) Summary {
	return Summary{
		Passed:  s.Passed + other.Passed,
		Failed:  s.Failed + other.Failed,
		Errored: s.Errored + other.Errored,
		Pending: s.Pending + other.Pending,
		Halted:  s.Halted || other.Halted,
	}
}

func (s *Summary) add(o Outcome) {
	switch o.Status {
	case StatusPassed:
		s.Passed++
	case StatusFailed:
		s.Failed++
	case StatusErrored:
		s.Errored++
	case StatusPending:
		s.Pending++
	}
}
