package spec

import (
	"fmt"
)

// Matcher judges an actual value. The method set matches Gomega's
// types.GomegaMatcher, so Gomega matchers can be used directly.
type Matcher interface {
	Match(actual any) (bool, error)
	FailureMessage(actual any) string
	NegatedFailureMessage(actual any) string
}

// Operand is what an expectation is about: a value computed before the
// assertion, or a function evaluated by the assertion itself.
type Operand struct {
	value    any
	fn       func() any
	deferred bool
}

// ValueOperand wraps an eagerly computed value.
func ValueOperand(v any) Operand {
	return Operand{value: v}
}

// DeferredOperand wraps a function evaluated inside the assertion.
func DeferredOperand(fn func() any) Operand {
	return Operand{fn: fn, deferred: true}
}

// Deferred reports whether the operand is evaluated by the assertion.
func (o Operand) Deferred() bool {
	return o.deferred
}

// Result is what an assertion reports back.
type Result struct {
	Valid  bool
	Actual any
	Fault  error
}

// Assertion evaluates matcher m against the operand, negated or not.
type Assertion func(op Operand, negate bool, m Matcher) Result

// Fault is an unexpected panic raised while producing or matching a value.
type Fault struct {
	Value any
}

func (f *Fault) Error() string {
	if err, ok := f.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(f.Value)
}

func (f *Fault) Unwrap() error {
	err, _ := f.Value.(error)
	return err
}

// Exam is the default Assertion. Deferred operands are produced inside Exam
// so that a panic becomes the Fault of the result. Matchers reporting
// Deferred() == true receive the operand as a func() instead of its value.
func Exam(op Operand, negate bool, m Matcher) Result {
	if !op.deferred {
		return judge(op.value, negate, m)
	}
	if isDeferredMatcher(m) {
		var control any
		act := func() {
			defer func() {
				if r := recover(); r != nil {
					if !isControl(r) {
						panic(r)
					}
					control = r
				}
			}()
			op.fn()
		}
		res := judge(act, negate, m)
		if control != nil {
			panic(control)
		}
		return res
	}
	v, fault := produce(op.fn)
	if fault != nil {
		return Result{Fault: fault}
	}
	return judge(v, negate, m)
}

func judge(actual any, negate bool, m Matcher) (res Result) {
	res.Actual = actual
	defer func() {
		if r := recover(); r != nil {
			rethrowControl(r)
			res = Result{Actual: actual, Fault: &Fault{Value: r}}
		}
	}()
	ok, err := m.Match(actual)
	if err != nil {
		return Result{Actual: actual, Fault: err}
	}
	return Result{Valid: ok != negate, Actual: actual}
}

func produce(fn func() any) (v any, fault error) {
	defer func() {
		if r := recover(); r != nil {
			rethrowControl(r)
			fault = &Fault{Value: r}
		}
	}()
	return fn(), nil
}

// rethrowControl re-panics values that must reach the runner untouched.
func rethrowControl(r any) {
	if isControl(r) {
		panic(r)
	}
}

func isControl(r any) bool {
	switch r.(type) {
	case authoringPanic, haltPanic:
		return true
	}
	return false
}

func isDeferredMatcher(m Matcher) bool {
	d, ok := m.(interface{ Deferred() bool })
	return ok && d.Deferred()
}
