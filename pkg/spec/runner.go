package spec

import (
	"errors"
)

// Runner executes single examples.
type Runner struct {
	assert Assertion
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithAssertion replaces Exam as the assertion capability.
func WithAssertion(a Assertion) RunnerOption {
	return func(r *Runner) {
		if a != nil {
			r.assert = a
		}
	}
}

// NewRunner creates a new Runner
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{assert: Exam}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes ex against a fresh Scope. Authoring errors are returned as
// err and produce no outcome.
func (r *Runner) Run(ex *Example) (out Outcome, err error) {
	subject := ex.FullDescription()
	if ex.Pending() {
		return Outcome{Status: StatusPending, Subject: subject, Message: ex.message}, nil
	}

	scope := newScope(ex, r.assert)
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		switch p := rec.(type) {
		case haltPanic:
			out = p.outcome
			out.Subject = subject
		case authoringPanic:
			out, err = Outcome{}, p.err
		case error:
			if errors.Is(p, ErrSealed) {
				out, err = Outcome{}, p
				return
			}
			out = Outcome{Status: StatusErrored, Subject: subject, Message: (&Fault{Value: p}).Error()}
		default:
			out = Outcome{Status: StatusErrored, Subject: subject, Message: (&Fault{Value: p}).Error()}
		}
	}()

	ex.body(scope)

	msg := scope.satisfied
	if msg == "" {
		msg = subject
	}
	return Outcome{Status: StatusPassed, Subject: subject, Message: msg}, nil
}
