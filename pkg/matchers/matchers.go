// Package matchers provides the expectation matchers used with spec.Scope.
// Each matcher delegates the matching itself to Gomega and adds the one-line
// description used in console output.
package matchers

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// Matcher wraps a Gomega matcher with a short description such as "eq 3".
type Matcher struct {
	types.GomegaMatcher
	description string
	deferred    bool
}

// Wrap adapts any Gomega matcher.
func Wrap(m types.GomegaMatcher, description string) *Matcher {
	return &Matcher{GomegaMatcher: m, description: description}
}

// Description returns the matcher description.
func (m *Matcher) Description() string {
	return m.description
}

// Deferred reports whether the matcher judges a function call rather than a value.
func (m *Matcher) Deferred() bool {
	return m.deferred
}

// FailureMessage returns a single-line failure message.
func (m *Matcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %sto %s", show(actual), m.description)
}

// NegatedFailureMessage returns a single-line failure message for NotTo.
func (m *Matcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("expected %snot to %s", show(actual), m.description)
}

// Eq matches values that are deeply equal to expected.
func Eq(expected any) *Matcher {
	return Wrap(gomega.Equal(expected), fmt.Sprintf("eq %#v", expected))
}

// Be matches the identical value.
func Be(expected any) *Matcher {
	return Wrap(gomega.BeIdenticalTo(expected), fmt.Sprintf("be %#v", expected))
}

// BeTrue matches true.
func BeTrue() *Matcher {
	return Wrap(gomega.BeTrue(), "be true")
}

// BeFalse matches false.
func BeFalse() *Matcher {
	return Wrap(gomega.BeFalse(), "be false")
}

// BeNil matches nil values, including typed nils.
func BeNil() *Matcher {
	return Wrap(gomega.BeNil(), "be nil")
}

// BeEmpty matches empty strings, slices, maps and channels.
func BeEmpty() *Matcher {
	return Wrap(gomega.BeEmpty(), "be empty")
}

// HaveLen matches values of length n.
func HaveLen(n int) *Matcher {
	return Wrap(gomega.HaveLen(n), fmt.Sprintf("have length %d", n))
}

// Include matches collections containing element.
func Include(element any) *Matcher {
	return Wrap(gomega.ContainElement(element), fmt.Sprintf("include %#v", element))
}

// BeNumerically compares numbers, e.g. BeNumerically(">", 3).
func BeNumerically(comparator string, compareTo ...any) *Matcher {
	description := "be " + comparator
	for _, v := range compareTo {
		description += fmt.Sprintf(" %v", v)
	}
	return Wrap(gomega.BeNumerically(comparator, compareTo...), description)
}

// Match matches strings against a regular expression.
func Match(pattern string) *Matcher {
	return Wrap(gomega.MatchRegexp(pattern), fmt.Sprintf("match /%s/", pattern))
}

// BeAnInstanceOf matches values assignable to the type of sample.
func BeAnInstanceOf(sample any) *Matcher {
	return Wrap(gomega.BeAssignableToTypeOf(sample), fmt.Sprintf("be an instance of %T", sample))
}

// MatchError matches errors equal to, wrapping, or with the message of expected.
func MatchError(expected any) *Matcher {
	return Wrap(gomega.MatchError(expected), fmt.Sprintf("match error %v", expected))
}

// Satisfy matches values for which predicate returns true.
func Satisfy(description string, predicate func(any) bool) *Matcher {
	return Wrap(gomega.Satisfy(predicate), description)
}

// Panic matches acts that panic. It only applies to ExpectFunc and IsExpected.
func Panic() *Matcher {
	m := Wrap(gomega.Panic(), "panic")
	m.deferred = true
	return m
}

// PanicWith matches acts that panic with a value matching expected.
func PanicWith(expected any) *Matcher {
	m := Wrap(gomega.PanicWith(expected), fmt.Sprintf("panic with %v", expected))
	m.deferred = true
	return m
}

func show(actual any) string {
	if actual != nil && reflect.TypeOf(actual).Kind() == reflect.Func {
		return ""
	}
	return fmt.Sprintf("%#v ", actual)
}
