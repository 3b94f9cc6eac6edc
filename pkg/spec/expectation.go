package spec

import (
	"fmt"
	"reflect"
	"strings"
)

// Expectation is the target of Expect, ExpectFunc and IsExpected.
type Expectation struct {
	scope   *Scope
	operand Operand
}

// Expect starts an expectation about v.
func (s *Scope) Expect(v any) *Expectation {
	return &Expectation{scope: s, operand: ValueOperand(v)}
}

// ExpectFunc starts an expectation about the value fn returns. fn runs inside
// the assertion, so a panic is reported as an error outcome.
func (s *Scope) ExpectFunc(fn func() any) *Expectation {
	return &Expectation{scope: s, operand: DeferredOperand(fn)}
}

// IsExpected starts a deferred expectation about the subject.
func (s *Scope) IsExpected() *Expectation {
	return s.ExpectFunc(s.Subject)
}

// ExpectSubject is IsExpected.
func (s *Scope) ExpectSubject() *Expectation {
	return s.IsExpected()
}

// To requires m to match. An unsatisfied expectation ends the example.
func (e *Expectation) To(m Matcher) {
	e.scope.check(e.operand, false, m)
}

// NotTo requires m not to match. An unsatisfied expectation ends the example.
func (e *Expectation) NotTo(m Matcher) {
	e.scope.check(e.operand, true, m)
}

// ToNot is an alias of NotTo.
func (e *Expectation) ToNot(m Matcher) {
	e.NotTo(m)
}

func (s *Scope) check(op Operand, negate bool, m Matcher) {
	res := s.assert(op, negate, m)
	switch {
	case res.Fault != nil:
		panic(haltPanic{outcome: Outcome{
			Status:  StatusErrored,
			Message: res.Fault.Error(),
		}})
	case !res.Valid:
		msg := m.FailureMessage(res.Actual)
		if negate {
			msg = m.NegatedFailureMessage(res.Actual)
		}
		panic(haltPanic{outcome: Outcome{
			Status:  StatusFailed,
			Message: msg,
		}})
	}
	s.satisfied = satisfiedMessage(res.Actual, negate, m)
}

// satisfiedMessage describes a satisfied expectation, e.g.
// "expected false not to be true".
func satisfiedMessage(actual any, negate bool, m Matcher) string {
	desc := "match"
	if d, ok := m.(interface{ Description() string }); ok {
		desc = d.Description()
	}

	var b strings.Builder
	b.WriteString("expected ")
	if actual == nil || reflect.TypeOf(actual).Kind() != reflect.Func {
		fmt.Fprintf(&b, "%#v ", actual)
	}
	if negate {
		b.WriteString("not ")
	}
	b.WriteString("to ")
	b.WriteString(desc)
	return b.String()
}
