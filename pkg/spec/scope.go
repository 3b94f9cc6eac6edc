package spec

// Scope is the per-example resolution context. A new Scope is created for
// every example execution, so memoized helpers never leak between examples.
type Scope struct {
	example   *Example
	chain     []*Group
	memo      map[string]any
	resolving map[string]bool

	assert    Assertion
	satisfied string
}

func newScope(ex *Example, assert Assertion) *Scope {
	if assert == nil {
		assert = Exam
	}
	return &Scope{
		example:   ex,
		chain:     ex.group.ancestry(),
		memo:      make(map[string]any),
		resolving: make(map[string]bool),
		assert:    assert,
	}
}

// Get resolves the named helper, evaluating it at most once per example.
// Authoring errors abort the example and are returned by Runner.Run.
func (s *Scope) Get(name string) any {
	if v, ok := s.memo[name]; ok {
		return v
	}
	if s.resolving[name] {
		panic(authoringPanic{err: &CyclicHelperError{Name: name}})
	}

	defs := s.definitions(name)
	if len(defs) == 0 {
		group := s.example.group.FullDescription()
		if name == SubjectName {
			panic(authoringPanic{err: &UndefinedDescribedTargetError{Group: group}})
		}
		panic(authoringPanic{err: &UndefinedHelperError{Name: name, Group: group}})
	}

	s.resolving[name] = true
	defer delete(s.resolving, name)

	v := s.invoke(name, defs, len(defs)-1)
	s.memo[name] = v
	return v
}

// Lookup is Get returning authoring errors instead of aborting the example.
func (s *Scope) Lookup(name string) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			ap, ok := r.(authoringPanic)
			if !ok {
				panic(r)
			}
			err = ap.err
		}
	}()
	return s.Get(name), nil
}

// Subject resolves the subject helper.
func (s *Scope) Subject() any {
	return s.Get(SubjectName)
}

// As resolves the named helper and asserts its type.
func As[T any](s *Scope, name string) T {
	return s.Get(name).(T)
}

// invoke evaluates definition i, binding super to definition i-1.
func (s *Scope) invoke(name string, defs []Producer, i int) any {
	super := func() any {
		if i == 0 {
			panic(authoringPanic{err: &OverrideWithoutAncestorError{
				Name:  name,
				Group: s.example.group.FullDescription(),
			}})
		}
		return s.invoke(name, defs, i-1)
	}
	return defs[i](s, super)
}

// definitions returns the override chain for name, outermost first. The
// subject defaults to the described target below every explicit definition.
func (s *Scope) definitions(name string) []Producer {
	var defs []Producer
	if name == SubjectName {
		if t, ok := s.example.group.Target(); ok {
			defs = append(defs, func(*Scope, Super) any { return t.instance() })
		}
	}
	for _, g := range s.chain {
		if p, ok := g.helpers[name]; ok {
			defs = append(defs, p)
		}
	}
	return defs
}
