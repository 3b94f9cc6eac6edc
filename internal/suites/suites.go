// Package suites registers the example suites shipped with the gospec binary.
package suites

import (
	"strings"

	"gospec/pkg/matchers"
	"gospec/pkg/spec"
)

func init() {
	spec.Register(All()...)
}

// All declares the shipped suites in registration order.
func All() []*spec.Group {
	return []*spec.Group{
		TrueFromFalse(),
		Arrays(),
		Integers(),
		NestedSubject(),
		DivisionByZero(),
		Strings(),
	}
}

// TrueFromFalse checks a negated expectation.
func TrueFromFalse() *spec.Group {
	return spec.Describe("The true from the false", func(g *spec.G) {
		g.It("", func(s *spec.Scope) {
			s.Expect(false).NotTo(matchers.Be(true))
		})
	})
}

// Arrays covers the basic behavior of slices.
func Arrays() *spec.Group {
	return spec.Describe(spec.Type[[]int](), func(g *spec.G) {
		g.Describe("#size", func(g *spec.G) {
			g.It("correctly reports the number of elements in the slice", func(s *spec.Scope) {
				s.Expect(len([]int{1, 2, 3})).To(matchers.Eq(3))
			})
		})

		g.Describe("#empty?", func(g *spec.G) {
			g.It("is empty when no elements are in the slice", func(s *spec.Scope) {
				s.IsExpected().To(matchers.BeEmpty())
			})

			g.It("is not empty if there are elements in the slice", func(s *spec.Scope) {
				s.Expect(len([]int{1}) == 0).To(matchers.BeFalse())
			})
		})
	})
}

// Integers shows an inherited helper overridden through super.
func Integers() *spec.Group {
	return spec.Describe(spec.Type[int](), func(g *spec.G) {
		g.Let("answer", func(*spec.Scope, spec.Super) any { return 42 })

		g.It("returns the value", func(s *spec.Scope) {
			s.Expect(s.Get("answer")).To(matchers.Be(42))
		})

		g.Context("when the number is incremented", func(g *spec.G) {
			g.Let("answer", func(_ *spec.Scope, super spec.Super) any {
				return super().(int) + 1
			})

			g.It("returns the next value", func(s *spec.Scope) {
				s.Expect(s.Get("answer")).To(matchers.Be(43))
			})
		})
	})
}

// NestedSubject reads a subject declared above a context.
func NestedSubject() *spec.Group {
	return spec.Describe(spec.Type[[]int](), func(g *spec.G) {
		g.Subject(func(*spec.Scope, spec.Super) any { return []int{1, 2, 3} })

		g.Context("when inside a context", func(g *spec.G) {
			g.It("has the prescribed elements", func(s *spec.Scope) {
				s.IsExpected().To(matchers.Eq([]int{1, 2, 3}))
			})
		})
	})
}

// DivisionByZero expects the subject to panic.
func DivisionByZero() *spec.Group {
	return spec.Context("when divided by zero", func(g *spec.G) {
		g.Let("divisor", func(*spec.Scope, spec.Super) any { return 0 })
		g.Subject(func(s *spec.Scope, _ spec.Super) any {
			return 42 / spec.As[int](s, "divisor")
		})

		g.It("panics", func(s *spec.Scope) {
			s.IsExpected().To(matchers.Panic())
		})
	})
}

// Strings describes concatenation.
func Strings() *spec.Group {
	return spec.Describe(spec.Type[string](), func(g *spec.G) {
		g.Describe("+", func(g *spec.G) {
			g.It("concats", func(s *spec.Scope) {
				s.Expect("foo" + "bar").To(matchers.Eq("foobar"))
			})
		})

		g.Describe("strings.ToUpper", func(g *spec.G) {
			g.Subject(func(*spec.Scope, spec.Super) any { return strings.ToUpper("foo") })

			g.It("upcases", func(s *spec.Scope) {
				s.IsExpected().To(matchers.Match("^FOO$"))
			})
		})
	})
}
